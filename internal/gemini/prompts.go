package gemini

import (
	"fmt"
	"strings"

	"github.com/waypointlabs/semantic-maps-api/internal/dto"
)

const voiceCommandSystemPrompt = `You are a highly intelligent travel assistant. Your task is to parse a user's voice command into a structured JSON object. The command will contain a travel route and a search query.

You must identify three key pieces of information:
1.  ` + "`origin`" + `: The starting point of the journey.
2.  ` + "`destination`" + `: The final destination of the journey.
3.  ` + "`semanticQuery`" + `: What the user wants to find or do along the way.

**Rules:**
- Your response MUST be a valid JSON object and nothing else.
- If any of the three fields are not present in the user's command, you MUST return an empty string "" for that field.
- Do not add any extra explanations, markdown formatting, or text outside of the JSON object.
- If the command is vague (like "the other one", "another place", etc.), mark it as vague.
- If any location contains relative terms like "next to", "near", "a ", "an ", mark it as needing resolution.

**Example 1:**
User command: "I want to go from 8875 Costa Verde Boulevard to the Price Center in San Diego and I want pizza on the way"
Your response:
{
  "origin": "8875 Costa Verde Boulevard",
  "destination": "the Price Center in San Diego",
  "semanticQuery": "pizza on the way",
  "isVague": false
}

**Example 2:**
User command: "I'm in McDonalds and want to go to the other one"
Your response:
{
  "origin": "McDonalds",
  "destination": "the other one",
  "semanticQuery": "",
  "isVague": true,
  "vagueContext": "McDonalds"
}

**Example 3:**
User command: "I'm at a McDonald's next to UTC in La Jolla San Diego and want to go to the other one"
Your response:
{
  "origin": "a McDonald's next to UTC in La Jolla San Diego",
  "destination": "the other one",
  "semanticQuery": "",
  "isVague": true,
  "vagueContext": "McDonald's"
}

**Example 4:**
User command: "find coffee shops nearby"
Your response:
{
  "origin": "",
  "destination": "",
  "semanticQuery": "find coffee shops nearby",
  "isVague": false
}`

func voiceCommandPrompt(command string) string {
	return fmt.Sprintf("%s\n\nUser command to parse:\n%q", voiceCommandSystemPrompt, command)
}

func searchTermsPrompt(query string) string {
	return fmt.Sprintf(`You are a geospatial search assistant in a travel planning application.
A user asked: %q.
Extract concise keywords suitable for a Google Places text search and, if possible, a Google Places 'type' value.
Respond ONLY with JSON in the format: {
  "search_query": "<keywords>",
  "place_type": "<place type or empty string>"
}`, query)
}

func recommendPrompt(places []dto.Place, query string) string {
	summaries := make([]string, 0, len(places))
	for i, place := range places {
		summaries = append(summaries, placeSummary(i, place))
	}

	return fmt.Sprintf(`You are a travel expert analyzing places for a user query: %q

Here are the candidate places:
%s

Please:
1. Select the TOP 2-3 most suitable places based on ratings, reviews, relevance to the query, and overall quality
2. Provide a brief explanation (1-2 sentences) for each recommendation explaining why it's great for this specific query
3. Rank them from best to least best

Respond with JSON in this exact format:
{
    "recommendations": [
        {
            "place_index": 0,
            "reason": "Brief explanation why this place is perfect for the query"
        },
        {
            "place_index": 1,
            "reason": "Brief explanation why this place is recommended"
        }
    ]
}`, query, strings.Join(summaries, "\n"))
}

func placeSummary(index int, place dto.Place) string {
	name := place.Name
	if name == "" {
		name = "Unknown"
	}
	address := place.FormattedAddress
	if address == "" {
		address = "N/A"
	}
	types := place.Types
	if len(types) > 3 {
		types = types[:3]
	}
	return fmt.Sprintf("Place %d: %s (Rating: %s, Reviews: %d, Price: %s, Types: %s, Address: %s)",
		index+1, name, ratingLabel(place.Rating), place.UserRatingsTotal,
		priceLabel(place.PriceLevel), strings.Join(types, ", "), address)
}

func locationQueryPrompt(location, kind, reference string) string {
	contextPart := ""
	if reference != "" {
		contextPart = fmt.Sprintf(" The user is currently at or near: %s", reference)
	}
	return fmt.Sprintf(`The user mentioned a %s: %q.%s

Generate a specific search query to find this location. Be smart about extracting the key business name and location.
Examples:
- "a McDonald's next to UTC in La Jolla San Diego" -> "McDonald's UTC La Jolla San Diego"
- "I'm at the mall" -> "shopping mall"
- "I'm near Starbucks" -> "Starbucks coffee shop"
- "I'm at the restaurant" -> "restaurant"
- "I'm here" -> "current location" (if no context)
- "the McDonald's next to the gas station" -> "McDonald's gas station"

Respond with JSON:
{
    "search_query": "specific search terms",
    "location_type": "business|landmark|area|current_location",
    "explanation": "brief explanation"
}`, kind, location, contextPart)
}

func broadSearchPrompt(command, vagueContext string) string {
	return fmt.Sprintf(`The user said: %q

The context is: %s

Generate a specific search query to find what the user is looking for.
For example, if they said "the other McDonalds", search for "McDonalds restaurant".
If they said "another coffee shop", search for "coffee shop".

Respond with JSON:
{
    "search_query": "specific search terms",
    "explanation": "brief explanation of what we're searching for"
}`, command, vagueContext)
}

func ratingLabel(rating *float64) string {
	if rating == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *rating)
}

func priceLabel(priceLevel int) string {
	if priceLevel < 1 {
		priceLevel = 1
	}
	return strings.Repeat("$", priceLevel)
}

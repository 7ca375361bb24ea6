package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/petasbytes/dehydrate/tooldef"
)

type GetWeatherInput struct {
	City  string `json:"city" jsonschema_description:"City name, e.g. 'Wellington'."`
	Units string `json:"units,omitempty" jsonschema_description:"Measurement units: 'metric' or 'imperial'."`
}

var GetWeather = Tool{
	Def: tooldef.Tool{
		Name:        "get_weather",
		Description: "Get the current weather forecast for a city",
		InputSchema: tooldef.GenerateSchema[GetWeatherInput](),
	},
	Handler: getWeather,
}

func getWeather(input json.RawMessage) (string, error) {
	var in GetWeatherInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if in.City == "" {
		return "", fmt.Errorf("catalog: get_weather requires a city")
	}
	if in.Units == "imperial" {
		return fmt.Sprintf("Weather in %s: 64°F, light wind, partly cloudy.", in.City), nil
	}
	return fmt.Sprintf("Weather in %s: 18°C, light wind, partly cloudy.", in.City), nil
}

type GetTimeInput struct {
	Timezone string `json:"timezone,omitempty" jsonschema_description:"IANA timezone name, e.g. 'Pacific/Auckland'. Defaults to UTC."`
}

var GetTime = Tool{
	Def: tooldef.Tool{
		Name:        "get_time",
		Description: "Get the current time, optionally in a specific timezone",
		InputSchema: tooldef.GenerateSchema[GetTimeInput](),
	},
	Handler: getTime,
}

func getTime(input json.RawMessage) (string, error) {
	var in GetTimeInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	loc := time.UTC
	if in.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(in.Timezone)
		if err != nil {
			return "", fmt.Errorf("catalog: unknown timezone %q", in.Timezone)
		}
	}
	return time.Now().In(loc).Format(time.RFC1123), nil
}

type SendEmailInput struct {
	To      string `json:"to" jsonschema_description:"Recipient email address."`
	Subject string `json:"subject" jsonschema_description:"Subject line."`
	Body    string `json:"body" jsonschema_description:"Plain-text message body."`
}

var SendEmail = Tool{
	Def: tooldef.Tool{
		Name:        "send_email",
		Description: "Send an email message to a recipient",
		InputSchema: tooldef.GenerateSchema[SendEmailInput](),
	},
	Handler: sendEmail,
}

func sendEmail(input json.RawMessage) (string, error) {
	var in SendEmailInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if in.To == "" {
		return "", fmt.Errorf("catalog: send_email requires a recipient")
	}
	return fmt.Sprintf("Email to %s queued (subject: %q).", in.To, in.Subject), nil
}

type CreateCalendarEventInput struct {
	Title string `json:"title" jsonschema_description:"Event title."`
	Start string `json:"start" jsonschema_description:"Start time in RFC3339 format."`
	End   string `json:"end,omitempty" jsonschema_description:"End time in RFC3339 format. Defaults to one hour after start."`
}

var CreateCalendarEvent = Tool{
	Def: tooldef.Tool{
		Name:        "create_calendar_event",
		Description: "Create a calendar event with a title and start time",
		InputSchema: tooldef.GenerateSchema[CreateCalendarEventInput](),
	},
	Handler: createCalendarEvent,
}

func createCalendarEvent(input json.RawMessage) (string, error) {
	var in CreateCalendarEventInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if in.Title == "" || in.Start == "" {
		return "", fmt.Errorf("catalog: create_calendar_event requires a title and start")
	}
	if _, err := time.Parse(time.RFC3339, in.Start); err != nil {
		return "", fmt.Errorf("catalog: invalid start time %q", in.Start)
	}
	return fmt.Sprintf("Event %q created for %s.", in.Title, in.Start), nil
}

type SearchContactsInput struct {
	Query string `json:"query" jsonschema_description:"Name or partial name to look up."`
}

var SearchContacts = Tool{
	Def: tooldef.Tool{
		Name:        "search_contacts",
		Description: "Search the address book for a contact by name",
		InputSchema: tooldef.GenerateSchema[SearchContactsInput](),
	},
	Handler: searchContacts,
}

var demoContacts = map[string]string{
	"ada":   "ada@example.com",
	"grace": "grace@example.com",
	"alan":  "alan@example.com",
}

func searchContacts(input json.RawMessage) (string, error) {
	var in SearchContactsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	q := strings.ToLower(strings.TrimSpace(in.Query))
	if q == "" {
		return "", fmt.Errorf("catalog: search_contacts requires a query")
	}
	for name, email := range demoContacts {
		if strings.Contains(name, q) {
			return fmt.Sprintf("%s <%s>", name, email), nil
		}
	}
	return "No contacts matched.", nil
}

type ListFilesInput struct {
	Path string `json:"path,omitempty" jsonschema_description:"Relative directory path. Defaults to the current directory."`
}

var ListFiles = Tool{
	Def: tooldef.Tool{
		Name:        "list_files",
		Description: "List files in a directory",
		InputSchema: tooldef.GenerateSchema[ListFilesInput](),
	},
	Handler: listFiles,
}

func listFiles(input json.RawMessage) (string, error) {
	var in ListFilesInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	// Demo stub; the real corpus this stands in for lives server-side.
	path := in.Path
	if path == "" {
		path = "."
	}
	return fmt.Sprintf("Listing for %s: notes.txt, report.pdf, photos/", path), nil
}

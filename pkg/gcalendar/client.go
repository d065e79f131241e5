package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// DefaultCalendarID is used when a request leaves CalendarID empty.
const DefaultCalendarID = "primary"

// TokenFileName is the OAuth token written by scripts/gcal-auth.
const TokenFileName = "token.json"

// ICalendar is the subset of the Calendar API the planner needs.
type ICalendar interface {
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

var _ ICalendar = (*Client)(nil)

// NewClientFromCredentialsFile creates a Calendar client from a credentials
// JSON file. For OAuth desktop credentials the token is read from token.json
// in the same directory.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, filepath.Join(filepath.Dir(credentialsPath), TokenFileName))
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service
// Account JSON, or from OAuth installed-app JSON plus a saved token file.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	// Service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	oauthConfig, oauthErr := OAuthConfigFromJSON(credentialsJSON)
	if oauthErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tokenData, tokenErr := os.ReadFile(tokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth desktop type but %s is missing: run scripts/gcal-auth", tokenPath)
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, jsonErr)
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// OAuthConfigFromJSON reads OAuth installed-app credentials.
func OAuthConfigFromJSON(credentialsJSON []byte) (*oauth2.Config, error) {
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentialsJSON, &oauthCreds); err != nil {
		return nil, err
	}
	if oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("missing installed.client_id")
	}

	cfg := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}
	if len(oauthCreds.Installed.RedirectURIs) > 0 {
		cfg.RedirectURL = oauthCreds.Installed.RedirectURIs[0]
	}
	return cfg, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListEvents returns the timed events overlapping [TimeMin, TimeMax) that
// block time, ordered by start. All-day, cancelled and "free" events are
// skipped.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	call := c.service.Events.List(calendarID).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339))
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		if item.Status == "cancelled" || item.Transparency == "transparent" {
			continue
		}
		if item.Start == nil || item.Start.DateTime == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			continue
		}
		var end time.Time
		if item.End != nil {
			end, _ = time.Parse(time.RFC3339, item.End.DateTime)
		}
		events = append(events, Event{
			ID:        item.Id,
			TaskID:    taskIDOf(item),
			Summary:   item.Summary,
			HtmlLink:  item.HtmlLink,
			StartTime: start,
			EndTime:   end,
		})
	}
	return events, nil
}

func taskIDOf(item *calendar.Event) int64 {
	if item.ExtendedProperties == nil {
		return 0
	}
	id, err := strconv.ParseInt(item.ExtendedProperties.Private[TaskIDProperty], 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// CreateEvent publishes a placement. The event carries the task id so later
// planning runs can tell it apart from the user's own commitments.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
	if req.TaskID > 0 {
		event.ExtendedProperties = &calendar.EventExtendedProperties{
			Private: map[string]string{TaskIDProperty: strconv.FormatInt(req.TaskID, 10)},
		}
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:        created.Id,
		TaskID:    req.TaskID,
		Summary:   created.Summary,
		HtmlLink:  created.HtmlLink,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

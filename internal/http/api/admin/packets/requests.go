package packets

import "encoding/json"

// auth

type SignupRequest struct {
	CompanyName string  `json:"company_name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	Name        *string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name"`
}

// sites

type CreateSiteRequest struct {
	Name     string  `json:"name" binding:"required"`
	Location *string `json:"location"`
	Timezone string  `json:"timezone" binding:"required"`
}

type UpdateSiteRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Timezone *string `json:"timezone"`
}

// players

type CreatePlayerRequest struct {
	SiteID int    `json:"site_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

type UpdatePlayerRequest struct {
	Name   *string `json:"name"`
	SiteID *int    `json:"site_id"`
}

type PairPlayerRequest struct {
	Code string `json:"code" binding:"required"`
}

// layouts & layers

type CreateLayoutRequest struct {
	Name            string  `json:"name" binding:"required"`
	Width           int     `json:"width" binding:"required,min=100"`
	Height          int     `json:"height" binding:"required,min=100"`
	BackgroundColor string  `json:"background_color"`
	Tags            *string `json:"tags"`
}

type UpdateLayoutRequest struct {
	Name            *string `json:"name"`
	Width           *int    `json:"width" binding:"omitempty,min=100"`
	Height          *int    `json:"height" binding:"omitempty,min=100"`
	BackgroundColor *string `json:"background_color"`
	Tags            *string `json:"tags"`
}

type CreateLayerRequest struct {
	Type     string          `json:"type" binding:"required"`
	X        int             `json:"x"`
	Y        int             `json:"y"`
	Width    int             `json:"width" binding:"required,min=1"`
	Height   int             `json:"height" binding:"required,min=1"`
	Rotation float64         `json:"rotation"`
	Opacity  *float64        `json:"opacity" binding:"omitempty,min=0,max=1"`
	ZIndex   int             `json:"z_index"`
	Visible  *bool           `json:"visible"`
	Locked   bool            `json:"locked"`
	Config   json.RawMessage `json:"config"`
}

type UpdateLayerRequest struct {
	X        *int            `json:"x"`
	Y        *int            `json:"y"`
	Width    *int            `json:"width" binding:"omitempty,min=1"`
	Height   *int            `json:"height" binding:"omitempty,min=1"`
	Rotation *float64        `json:"rotation"`
	Opacity  *float64        `json:"opacity" binding:"omitempty,min=0,max=1"`
	ZIndex   *int            `json:"z_index"`
	Visible  *bool           `json:"visible"`
	Locked   *bool           `json:"locked"`
	Config   json.RawMessage `json:"config"`
}

// playlists

type CreatePlaylistRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdatePlaylistRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

type AddPlaylistItemRequest struct {
	ContentID          int     `json:"content_id" binding:"required"`
	DisplayOrder       int     `json:"display_order" binding:"required"`
	Duration           *int    `json:"duration" binding:"omitempty,min=1"`
	TransitionType     *string `json:"transition_type" binding:"omitempty,oneof=none fade slide"`
	TransitionDuration *int    `json:"transition_duration" binding:"omitempty,min=0"`
}

type UpdatePlaylistItemRequest struct {
	DisplayOrder       *int    `json:"display_order"`
	Duration           *int    `json:"duration" binding:"omitempty,min=1"`
	TransitionType     *string `json:"transition_type" binding:"omitempty,oneof=none fade slide"`
	TransitionDuration *int    `json:"transition_duration" binding:"omitempty,min=0"`
}

type ReorderPlaylistRequest struct {
	ItemIDs []int `json:"item_ids" binding:"required"`
}

// content

type UpdateContentRequest struct {
	Name            *string `json:"name"`
	DefaultDuration *int    `json:"default_duration" binding:"omitempty,min=1"`
}

// schedules

type CreateScheduleRequest struct {
	Name       string  `json:"name" binding:"required"`
	LayoutID   int     `json:"layout_id" binding:"required"`
	Priority   int     `json:"priority" binding:"min=0,max=100"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	DaysOfWeek []int64 `json:"days_of_week" binding:"omitempty,dive,min=0,max=6"`
	IsActive   *bool   `json:"is_active"`
}

type UpdateScheduleRequest struct {
	Name       *string `json:"name"`
	LayoutID   *int    `json:"layout_id"`
	Priority   *int    `json:"priority" binding:"omitempty,min=0,max=100"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	DaysOfWeek []int64 `json:"days_of_week" binding:"omitempty,dive,min=0,max=6"`
	IsActive   *bool   `json:"is_active"`
}

// CreateAssignmentRequest must set exactly one target.
type CreateAssignmentRequest struct {
	TargetCustomerID *int `json:"target_customer_id"`
	TargetSiteID     *int `json:"target_site_id"`
	TargetPlayerID   *int `json:"target_player_id"`
}

// webhooks

type CreateWebhookRequest struct {
	URL    string   `json:"url" binding:"required,url"`
	Secret string   `json:"secret" binding:"required,min=16"`
	Events []string `json:"events" binding:"required,min=1"`
}

type UpdateWebhookRequest struct {
	URL      *string  `json:"url" binding:"omitempty,url"`
	Events   []string `json:"events"`
	IsActive *bool    `json:"is_active"`
}

// analytics

type AnalyticsQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

package model

// ContentEntry is the flattened playback unit handed to a player device.
// ThumbnailURL through Height are carried in the wire schema but are not
// populated by the resolution path today; they serialize as null.
type ContentEntry struct {
	ContentID          int     `json:"contentId"`
	Name               string  `json:"name"`
	ContentType        string  `json:"contentType"`
	FileURL            string  `json:"fileUrl"`
	Duration           int     `json:"duration"`
	DisplayOrder       int     `json:"displayOrder"`
	TransitionType     string  `json:"transitionType"`
	TransitionDuration int     `json:"transitionDuration"`
	ThumbnailURL       *string `json:"thumbnailUrl"`
	MimeType           *string `json:"mimeType"`
	FileSize           *int64  `json:"fileSize"`
	Width              *int    `json:"width"`
	Height             *int    `json:"height"`
}

// Store exposes every query the HTTP layer needs, so handlers can be
// exercised against a fake in tests without a live database.
package db

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/helioscast/helios/internal/model"
)

type Store interface {
	// users & tenants
	CreateUser(customerID int, email, hashedPassword string, name *string, role string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error
	CreateCustomer(name string, contactEmail *string) (model.Customer, error)
	GetCustomerByID(id int) (model.Customer, error)

	// sites
	CreateSite(customerID int, name string, location *string, timezone string) (model.Site, error)
	GetSiteByID(id, customerID int) (model.Site, error)
	ListSites(customerID int) ([]model.Site, error)
	UpdateSite(id, customerID int, name, location, timezone *string) error
	DeleteSite(id, customerID int) error

	// players
	CreatePlayer(customerID, siteID int, name string) (model.Player, error)
	GetPlayerByID(id, customerID int) (model.Player, error)
	GetPlayerByDeviceUID(deviceUID string) (model.Player, error)
	ListPlayers(customerID int) ([]model.Player, error)
	UpdatePlayer(id, customerID int, name *string, siteID *int) error
	DeletePlayer(id, customerID int) error
	PairPlayer(id, customerID int, deviceUID string) error
	RecordPlayerHeartbeat(id int, width, height *int) error

	// layouts & layers
	CreateLayout(customerID int, name string, width, height int, backgroundColor string, tags *string) (model.Layout, error)
	GetLayoutByID(id, customerID int) (model.Layout, error)
	ListLayouts(customerID int) ([]model.Layout, error)
	UpdateLayout(id, customerID int, name *string, width, height *int, backgroundColor, tags *string) error
	DeleteLayout(id, customerID int) error
	CreateLayer(layoutID int, layer model.Layer) (model.Layer, error)
	UpdateLayer(id, layoutID int, patch model.LayerPatch) error
	DeleteLayer(id, layoutID int) error

	// playlists
	CreatePlaylist(customerID int, name string) (model.Playlist, error)
	GetPlaylistByID(id int) (model.Playlist, error)
	ListPlaylists(customerID int) ([]model.Playlist, error)
	UpdatePlaylist(id, customerID int, name *string, isActive *bool) error
	DeletePlaylist(id, customerID int) error
	AddPlaylistItem(playlistID, contentID, displayOrder int, duration *int, transitionType *string, transitionDuration *int) (model.PlaylistItem, error)
	UpdatePlaylistItem(itemID int, displayOrder, duration *int, transitionType *string, transitionDuration *int) error
	RemovePlaylistItem(itemID int) error
	ReorderPlaylistItems(playlistID int, itemIDs []int) error

	// content
	CreateContent(customerID int, name, contentType, fileURL string, mimeType *string, fileSize *int64, defaultDuration *int) (model.Content, error)
	GetContentByID(id, customerID int) (model.Content, error)
	ListContent(customerID int) ([]model.Content, error)
	UpdateContent(id, customerID int, name *string, defaultDuration *int) error
	DeleteContent(id, customerID int) error

	// schedules
	CreateSchedule(s model.Schedule) (model.Schedule, error)
	GetScheduleByID(id, customerID int) (model.Schedule, error)
	ListSchedules(customerID int) ([]model.Schedule, error)
	UpdateSchedule(id, customerID int, patch model.SchedulePatch) (model.Schedule, error)
	DeleteSchedule(id, customerID int) error
	CreateScheduleAssignment(scheduleID int, targetCustomerID, targetSiteID, targetPlayerID *int) (model.ScheduleAssignment, error)
	ListScheduleAssignments(scheduleID int) ([]model.ScheduleAssignment, error)
	DeleteScheduleAssignment(id, scheduleID int) error
	CandidateSchedulesForPlayer(playerID int) ([]model.ScheduleCandidate, error)

	// webhooks
	CreateWebhook(customerID int, url, secret string, events []string) (model.Webhook, error)
	ListWebhooks(customerID int) ([]model.Webhook, error)
	GetWebhookByID(id, customerID int) (model.Webhook, error)
	UpdateWebhook(id, customerID int, url *string, events []string, isActive *bool) error
	DeleteWebhook(id, customerID int) error
	ActiveWebhooksForEvent(customerID int, event string) ([]model.Webhook, error)

	// analytics
	InsertPlaybackEvents(customerID, playerID int, events []model.PlaybackEvent) error
	ProofOfPlay(customerID int, from, to time.Time) ([]model.ProofOfPlayRow, error)
	PlayerActivity(customerID int, from, to time.Time) ([]model.PlayerActivityRow, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}

// NewStoreWithDB builds a store around an explicit handle, used by tests
// that drive a mocked connection.
func NewStoreWithDB(handle *sqlx.DB) Store {
	return &pgStore{db: handle}
}

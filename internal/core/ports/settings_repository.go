package ports

import "context"

// Settings carries the runtime messaging configuration: the shared staff
// channel destination and the tokens of the two messaging identities.
// Settings are admin-managed and re-read per acquisition, never cached
// across requests.
type Settings struct {
	StaffChannelID   int64
	StaffBotToken    string
	CustomerBotToken string
}

// HasStaffChannel reports whether a shared staff channel is configured.
func (s Settings) HasStaffChannel() bool {
	return s.StaffChannelID != 0
}

// SettingsRepository reads the runtime messaging configuration.
type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)
}

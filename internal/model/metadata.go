package model

// Metadata is the consolidated record extracted from an Element Desktop
// local-storage database. Scalar fields are pointers: nil means the key
// was never observed in the store, not that it is known to be empty.
// Field order here is the stable export order.
type Metadata struct {
	UserID      *string `json:"user_id"`
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`

	Theme                *string `json:"theme"`
	Language             *string `json:"language"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`

	RoomIDs        []string `json:"room_ids"`
	EncryptedRooms []string `json:"encrypted_rooms"`

	DeviceID      *string `json:"device_id"`
	DeviceName    *string `json:"device_name"`
	Curve25519Key *string `json:"curve25519_key"`
	Ed25519Key    *string `json:"ed25519_key"`

	// RawEntries maps every UTF-8-decodable key in the store to its
	// decoded value, or to "0x"-prefixed lowercase hex when the value
	// is not valid UTF-8.
	RawEntries map[string]string `json:"raw_entries"`
}

// NewMetadata creates an empty Metadata record with collections
// initialized, so they serialize as [] and {} rather than null.
func NewMetadata() Metadata {
	return Metadata{
		RoomIDs:        []string{},
		EncryptedRooms: []string{},
		RawEntries:     map[string]string{},
	}
}

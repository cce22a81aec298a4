package service

import (
	"strings"

	"github.com/dtroode/elementmeta/internal/model"
)

// rule pairs a key predicate with a field setter.
type rule struct {
	match func(key string) bool
	apply func(metadata *model.Metadata, key, value string)
}

func containsAny(substrs ...string) func(string) bool {
	return func(key string) bool {
		for _, s := range substrs {
			if strings.Contains(key, s) {
				return true
			}
		}
		return false
	}
}

// classificationRules maps Element Desktop key naming conventions onto
// Metadata fields. Rules are evaluated top to bottom and the first
// match wins; substring matching is case-sensitive. The order is
// load-bearing and must not be rearranged.
var classificationRules = []rule{
	{
		match: containsAny("user_id", "userId", "mx_user_id"),
		apply: func(m *model.Metadata, _, value string) { m.UserID = &value },
	},
	{
		match: containsAny("display_name", "displayName", "displayname"),
		apply: func(m *model.Metadata, _, value string) { m.DisplayName = &value },
	},
	{
		match: containsAny("avatar", "avatarUrl", "avatar_url"),
		apply: func(m *model.Metadata, _, value string) { m.AvatarURL = &value },
	},
	{
		match: containsAny("theme"),
		apply: func(m *model.Metadata, _, value string) { m.Theme = &value },
	},
	{
		match: containsAny("language", "locale"),
		apply: func(m *model.Metadata, _, value string) { m.Language = &value },
	},
	{
		match: containsAny("notification"),
		apply: func(m *model.Metadata, _, value string) {
			enabled := strings.ToLower(value) == "true"
			m.NotificationsEnabled = &enabled
		},
	},
	{
		match: containsAny("device_id", "deviceId", "mx_device_id"),
		apply: func(m *model.Metadata, _, value string) { m.DeviceID = &value },
	},
	{
		match: containsAny("device_name", "deviceName"),
		apply: func(m *model.Metadata, _, value string) { m.DeviceName = &value },
	},
	{
		match: containsAny("curve25519"),
		apply: func(m *model.Metadata, _, value string) { m.Curve25519Key = &value },
	},
	{
		match: containsAny("ed25519"),
		apply: func(m *model.Metadata, _, value string) { m.Ed25519Key = &value },
	},
	{
		match: func(key string) bool {
			return strings.Contains(key, "room") && strings.Contains(key, "id")
		},
		apply: func(m *model.Metadata, _, value string) {
			m.RoomIDs = append(m.RoomIDs, value)
		},
	},
	{
		// Appends the key, not the value. This mirrors how Element
		// names its per-room encryption flags.
		match: containsAny("encrypted"),
		apply: func(m *model.Metadata, key, value string) {
			if strings.ToLower(value) == "true" {
				m.EncryptedRooms = append(m.EncryptedRooms, key)
			}
		},
	},
}

// classify applies the first matching rule to metadata. Keys matching
// no rule leave the record untouched.
func classify(metadata *model.Metadata, key, value string) {
	for _, r := range classificationRules {
		if r.match(key) {
			r.apply(metadata, key, value)
			return
		}
	}
}

// Package model holds the GORM persistence structs.
package model

// All lists every persistence model in dependency order.
func All() []any {
	return []any{
		&SteamUserModel{},
		&SteamGameModel{},
		&OwnedGameModel{},
	}
}

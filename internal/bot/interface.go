package bot

// VoiceState holds minimal voice channel state for a user.
type VoiceState struct {
	ChannelID string
	UserID    string
}

// VoiceFinder reports which voice channel a user currently occupies.
type VoiceFinder interface {
	FindUserVoiceState(guildID, userID string) (*VoiceState, error)
}

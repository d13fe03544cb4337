package bot

import "github.com/bwmarrin/discordgo"

// Responder provides an abstraction for responding to Discord interactions.
// This interface enables testing handlers without a live Discord connection.
type Responder interface {
	// Respond sends a response to an interaction.
	Respond(response *discordgo.InteractionResponse) error

	// EditResponse replaces the original response, e.g. a deferred placeholder.
	EditResponse(edit *discordgo.WebhookEdit) error

	// DeleteResponse deletes the original response.
	DeleteResponse() error

	// Followup sends an additional message after the response.
	Followup(params *discordgo.WebhookParams) error

	// Acknowledged reports whether Respond has succeeded.
	Acknowledged() bool
}

// DiscordResponder implements Responder using a live Discord session.
type DiscordResponder struct {
	session      *discordgo.Session
	interaction  *discordgo.Interaction
	acknowledged bool
}

// NewDiscordResponder creates a new DiscordResponder.
func NewDiscordResponder(s *discordgo.Session, i *discordgo.Interaction) *DiscordResponder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

// Respond sends a response to the interaction via Discord API.
func (r *DiscordResponder) Respond(response *discordgo.InteractionResponse) error {
	if err := r.session.InteractionRespond(r.interaction, response); err != nil {
		return err
	}
	r.acknowledged = true
	return nil
}

// EditResponse edits the original interaction response.
func (r *DiscordResponder) EditResponse(edit *discordgo.WebhookEdit) error {
	_, err := r.session.InteractionResponseEdit(r.interaction, edit)
	return err
}

// DeleteResponse deletes the original interaction response.
func (r *DiscordResponder) DeleteResponse() error {
	return r.session.InteractionResponseDelete(r.interaction)
}

// Followup sends a followup message to the interaction.
func (r *DiscordResponder) Followup(params *discordgo.WebhookParams) error {
	_, err := r.session.FollowupMessageCreate(r.interaction, true, params)
	return err
}

// Acknowledged reports whether the interaction has been responded to.
func (r *DiscordResponder) Acknowledged() bool {
	return r.acknowledged
}

// MockResponder is a test double for Responder.
type MockResponder struct {
	Responses    []*discordgo.InteractionResponse
	LastResponse *discordgo.InteractionResponse
	Edits        []*discordgo.WebhookEdit
	Followups    []*discordgo.WebhookParams
	Deleted      bool
	Err          error
}

// Respond records the response for testing.
func (m *MockResponder) Respond(response *discordgo.InteractionResponse) error {
	m.Responses = append(m.Responses, response)
	m.LastResponse = response
	return m.Err
}

// EditResponse records the edit for testing.
func (m *MockResponder) EditResponse(edit *discordgo.WebhookEdit) error {
	m.Edits = append(m.Edits, edit)
	return m.Err
}

// DeleteResponse records the deletion for testing.
func (m *MockResponder) DeleteResponse() error {
	m.Deleted = true
	return m.Err
}

// Followup records the followup for testing.
func (m *MockResponder) Followup(params *discordgo.WebhookParams) error {
	m.Followups = append(m.Followups, params)
	return m.Err
}

// Acknowledged reports whether a response was recorded without error.
func (m *MockResponder) Acknowledged() bool {
	return len(m.Responses) > 0 && m.Err == nil
}

// MessageResponder replies to a prefix command.
type MessageResponder interface {
	// Reply sends embed as a reply to the command message.
	Reply(embed *discordgo.MessageEmbed) error
}

// DiscordMessageResponder implements MessageResponder using a live Discord session.
type DiscordMessageResponder struct {
	session *discordgo.Session
	message *discordgo.Message
}

// NewDiscordMessageResponder creates a new DiscordMessageResponder.
func NewDiscordMessageResponder(s *discordgo.Session, m *discordgo.Message) *DiscordMessageResponder {
	return &DiscordMessageResponder{
		session: s,
		message: m,
	}
}

// Reply sends the embed to the command's channel, referencing the command message without a ping.
func (r *DiscordMessageResponder) Reply(embed *discordgo.MessageEmbed) error {
	_, err := r.session.ChannelMessageSendComplex(r.message.ChannelID, &discordgo.MessageSend{
		Embeds:          []*discordgo.MessageEmbed{embed},
		Reference:       r.message.Reference(),
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	})
	return err
}

// MockMessageResponder is a test double for MessageResponder.
type MockMessageResponder struct {
	Embeds []*discordgo.MessageEmbed
	Err    error
}

// Reply records the embed for testing.
func (m *MockMessageResponder) Reply(embed *discordgo.MessageEmbed) error {
	m.Embeds = append(m.Embeds, embed)
	return m.Err
}

// Last returns the most recent reply, or nil.
func (m *MockMessageResponder) Last() *discordgo.MessageEmbed {
	if len(m.Embeds) == 0 {
		return nil
	}
	return m.Embeds[len(m.Embeds)-1]
}

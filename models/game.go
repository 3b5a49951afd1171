package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Game represents a single pickup sports event. The roster is embedded in
// the game document; no other entity references a Participant.
type Game struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Sport         string             `bson:"sport" json:"sport"`
	Location      string             `bson:"location" json:"location"`
	Date          string             `bson:"date" json:"date"`
	Time          string             `bson:"time" json:"time"`
	PlayersNeeded int                `bson:"playersNeeded" json:"players_needed"`
	Roster        []Participant      `bson:"roster" json:"roster"`
	CreatedBy     string             `bson:"createdBy,omitempty" json:"created_by,omitempty"`
	CreatorEmail  string             `bson:"creatorEmail,omitempty" json:"creator_email,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"created_at"`
}

// Participant is one roster entry. Entries are unique by Name and are only
// ever appended; removal happens through whole-game deletion.
type Participant struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
}

// HasParticipant reports whether the roster already contains an entry with
// the exact (case-sensitive) name.
func (g *Game) HasParticipant(name string) bool {
	for _, p := range g.Roster {
		if p.Name == name {
			return true
		}
	}
	return false
}

// IsFull reports whether the game has no open slots left.
func (g *Game) IsFull() bool {
	return g.PlayersNeeded <= 0
}

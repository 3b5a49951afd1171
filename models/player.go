package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Player is a standalone profile card, unrelated to any Game.
type Player struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	PrimarySport string             `bson:"primarySport" json:"primary_sport"`
	SkillLevel   string             `bson:"skillLevel" json:"skill_level"`
	Location     string             `bson:"location" json:"location"`
	Availability string             `bson:"availability" json:"availability"`
	CreatedAt    time.Time          `bson:"createdAt" json:"created_at"`
}

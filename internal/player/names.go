package player

import (
	"fmt"
	"math/rand"
	"time"
)

var adjectives = []string{
	"Brave", "Clever", "Wild", "Swift", "Bold", "Mighty", "Mystic", "Noble",
	"Fierce", "Gentle", "Silent", "Rapid", "Calm", "Proud", "Wise", "Happy",
	"Lucky", "Sneaky", "Cunning", "Bright", "Dark", "Golden", "Silver", "Royal",
}

var builders = []string{
	"Mason", "Architect", "Engineer", "Climber", "Surveyor", "Foreman",
	"Bricklayer", "Stonecutter", "Carpenter", "Scaffolder", "Rigger", "Welder",
}

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateRandomName creates a random fallback-player name in the format
// AdjectiveBuilderNumber, e.g. "BraveMason42".
func GenerateRandomName() string {
	adjective := adjectives[rng.Intn(len(adjectives))]
	builder := builders[rng.Intn(len(builders))]
	number := rng.Intn(100)
	return fmt.Sprintf("%s%s%d", adjective, builder, number)
}

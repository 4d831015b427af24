package stats

import "math/rand"

var coachMessages = []string{
	"Great discipline lately! Keep the trainings regular, your body will thank you.",
	"Reading grows the mind, training grows the body. Doing both is the recipe.",
	"Hydration is the foundation. Drink steadily and feel the difference.",
	"Kefir plus training is a winning combination.",
	"No phone after 9pm is a gift to your sleep. Well done holding the line.",
	"Every page read is an investment in your future self.",
	"Your cells appreciate every glass of water. Keep pouring.",
	"Every session is one step closer to a better version of you.",
	"Movement is life. Today you chose life.",
	"Live cultures are working for you. Good call on the kefir.",
	"Screens off after 9pm means melatonin on. Smart move.",
	"It's not about perfection, it's about consistency.",
	"Small steps stack into big changes. You're stacking them.",
	"Discipline is freedom.",
	"One day, one habit. Keep laying them one on top of the other.",
}

// CoachMessage picks one motivational line using the provided source,
// so callers that need determinism can seed it.
func CoachMessage(r *rand.Rand) string {
	return coachMessages[r.Intn(len(coachMessages))]
}

package challenge

import "math/rand/v2"

// motivations are the celebration messages shown when a challenge day is
// completed.
var motivations = []string{
	"You are your baby's whole world, and you are caring for yourself for them.",
	"Real motherhood is made of small steps. You are shining!",
	"Your strength is quiet, but it moves mountains. Well done!",
	"There is no perfect mother. There is you, and you are the best one.",
	"This moment is yours, and you deserve every second of it.",
	"Caring for yourself is the best gift for your family.",
	"One day at a time, you are growing beautifully.",
	"Be proud of who you are today.",
}

// Motivation returns a random celebration message.
func Motivation() string {
	return motivations[rand.IntN(len(motivations))]
}

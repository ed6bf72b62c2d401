package challenge

import "github.com/carlamendes/bloom/internal/models"

// defaultSequence is the fixed 30-day wellness challenge. Day numbers are
// stable identifiers; entries are completable in any order.
func defaultSequence() []models.ChallengeDay {
	return []models.ChallengeDay{
		{Day: 1, Title: "Hydrated Start", Description: "Drink 2.5L of water today. The basics that work.", Category: models.ChallengeNutrition},
		{Day: 2, Title: "Morning Stretch", Description: "Five minutes of stretching as soon as you wake up.", Category: models.ChallengeBody},
		{Day: 3, Title: "Positive Affirmation", Description: "Look in the mirror and name three of your qualities.", Category: models.ChallengeMind},
		{Day: 4, Title: "Colorful Plate", Description: "Your lunch needs at least three different colors.", Category: models.ChallengeNutrition},
		{Day: 5, Title: "Brisk Walk", Description: "Fifteen minutes of walking, stroller welcome.", Category: models.ChallengeBody},
		{Day: 6, Title: "Unplug", Description: "Spend one hour away from social media today.", Category: models.ChallengeMind},
		{Day: 7, Title: "Zero Sugar", Description: "Try to skip sweets and added sugar today.", Category: models.ChallengeNutrition},
		{Day: 8, Title: "Deep Breaths", Description: "Take ten slow, deep breaths before bed.", Category: models.ChallengeMind},
		{Day: 9, Title: "Extra Greens", Description: "Add an extra serving of vegetables to dinner.", Category: models.ChallengeNutrition},
		{Day: 10, Title: "Mobility", Description: "Do one hip mobility exercise.", Category: models.ChallengeBody},
		{Day: 11, Title: "Gratitude", Description: "Write down three things you are grateful for.", Category: models.ChallengeMind},
		{Day: 12, Title: "Fruit Swap", Description: "Swap one processed snack for a piece of fruit.", Category: models.ChallengeNutrition},
		{Day: 13, Title: "Squats", Description: "Three sets of ten squats, if you are cleared for them.", Category: models.ChallengeBody},
		{Day: 14, Title: "Self-Care", Description: "Take your time applying moisturizer head to toe.", Category: models.ChallengeMind},
		{Day: 15, Title: "Halfway There!", Description: "Take a photo and compare it with day one.", Category: models.ChallengeBody},
		{Day: 16, Title: "Calming Tea", Description: "Have a chamomile or lemon balm tea in the evening.", Category: models.ChallengeNutrition},
		{Day: 17, Title: "No Fried Food", Description: "Skip fried foods today.", Category: models.ChallengeNutrition},
		{Day: 18, Title: "Favorite Playlist", Description: "Listen to songs that make you happy for 20 minutes.", Category: models.ChallengeMind},
		{Day: 19, Title: "Strength", Description: "Bridge exercise: three holds of 30 seconds.", Category: models.ChallengeBody},
		{Day: 20, Title: "Light Dinner", Description: "Have a light dinner before 8pm.", Category: models.ChallengeNutrition},
		{Day: 21, Title: "Flash Meditation", Description: "Three minutes of complete silence.", Category: models.ChallengeMind},
		{Day: 22, Title: "Protein", Description: "Include a good protein source in every meal.", Category: models.ChallengeNutrition},
		{Day: 23, Title: "Dance", Description: "Dance with your baby or on your own for 10 minutes.", Category: models.ChallengeBody},
		{Day: 24, Title: "Reading", Description: "Read five pages of a book.", Category: models.ChallengeMind},
		{Day: 25, Title: "Screens Off", Description: "Put your phone away 30 minutes before sleep.", Category: models.ChallengeMind},
		{Day: 26, Title: "Green Juice", Description: "Have a green or detox juice in the morning.", Category: models.ChallengeNutrition},
		{Day: 27, Title: "Tidy Corner", Description: "Organize one messy drawer or corner.", Category: models.ChallengeMind},
		{Day: 28, Title: "Full Workout", Description: "Do 20 minutes of mixed exercises.", Category: models.ChallengeBody},
		{Day: 29, Title: "Smile", Description: "Smile at yourself every time you pass a mirror.", Category: models.ChallengeMind},
		{Day: 30, Title: "Celebrate!", Description: "You made it! Do something special for yourself.", Category: models.ChallengeBody},
	}
}

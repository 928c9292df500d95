package quiz

// Question is a single quiz prompt with its answer choices and an
// illustrative image.
type Question struct {
	Text     string
	Answers  []string
	ImageURL string
}

// DefaultQuestions returns the built-in question set.
func DefaultQuestions() []Question {
	return []Question{
		{
			Text:     "Which food do you like the most?",
			Answers:  []string{"Steak", "Fish", "Carrots", "Corn"},
			ImageURL: "https://source.unsplash.com/random/food",
		},
		{
			Text:     "Which activity do you enjoy?",
			Answers:  []string{"Swimming", "Sleeping", "Cuddling", "Eating"},
			ImageURL: "https://source.unsplash.com/random/activity",
		},
		{
			Text:     "What is your favorite color?",
			Answers:  []string{"Red", "Green", "Blue", "Yellow"},
			ImageURL: "https://source.unsplash.com/random/color",
		},
		{
			Text:     "What is your favorite season?",
			Answers:  []string{"Spring", "Summer", "Autumn", "Winter"},
			ImageURL: "https://source.unsplash.com/random/season",
		},
		{
			Text:     "What is your favorite animal?",
			Answers:  []string{"Dog", "Cat", "Bird", "Fish"},
			ImageURL: "https://source.unsplash.com/random/animal",
		},
	}
}

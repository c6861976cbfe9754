package catalog

// Meditation is one guided meditation.
type Meditation struct {
	ID              string `koanf:"id"`
	Title           string `koanf:"title"`
	DurationMinutes int    `koanf:"duration_minutes"`
	Description     string `koanf:"description"`
	ImageURL        string `koanf:"image_url"`
	AudioURL        string `koanf:"audio_url"`
	Script          string `koanf:"script"`
}

// HasAudio reports whether the meditation can be played, as opposed to
// only read.
func (m Meditation) HasAudio() bool {
	return m.AudioURL != ""
}

var builtinMeditations = []Meditation{
	{
		ID:              "breathe-calm",
		Title:           "Breathe Into Calm",
		DurationMinutes: 5,
		Description:     "A gentle journey to peace through mindful breathing",
		ImageURL:        "https://images.unsplash.com/photo-1526779259212-939e64788e3c",
		AudioURL:        "Breathe.mp3",
		Script: "Find a comfortable position and close your eyes. Take a deep breath in through your nose, " +
			"feeling your lungs expand fully. Hold for a moment, then slowly exhale through your mouth, " +
			"releasing any tension you may be holding. Continue this rhythm, allowing each breath to bring " +
			"you deeper into a state of calm and peace. With each inhale, imagine drawing in serenity and light. " +
			"With each exhale, release any worries or stress from your day. Feel your body becoming more " +
			"relaxed with every breath. Notice how your shoulders drop, your jaw softens, and your mind begins " +
			"to quiet. You are safe in this moment, surrounded by peace and tranquility.",
	},
	{
		ID:              "let-go",
		Title:           "Let Go of Stress",
		DurationMinutes: 10,
		Description:     "Release tension and find your center",
		ImageURL:        "https://images.unsplash.com/photo-1522075782449-e45a34f1ddfb",
		AudioURL:        "LetGoOfStress.mp3",
		Script: "Allow yourself to settle into this moment of peace. Notice where you hold stress in your body, " +
			"perhaps in your shoulders, your jaw, or your stomach. With each exhale, imagine releasing this " +
			"tension, letting it flow out of your body like water. You are safe, you are supported, and you can " +
			"let go. Visualize stress as a dark cloud that has been following you. With each breath, see this " +
			"cloud becoming lighter and lighter until it dissolves completely. Feel the warmth of relaxation " +
			"spreading through your entire body, from the top of your head down to your toes. You have the power " +
			"to release what no longer serves you. Trust in your ability to find peace within yourself.",
	},
	{
		ID:              "safe-space",
		Title:           "Safe Space Visualization",
		DurationMinutes: 5,
		Description:     "Create your personal sanctuary of peace",
		ImageURL:        "https://images.unsplash.com/photo-1520179432903-03d08e6ef07a",
		AudioURL:        "SafeSpace.mp3",
		Script: "Imagine a place where you feel completely safe and at peace. This might be a real place from " +
			"your memory, or somewhere entirely from your imagination. See the colors, feel the textures, hear " +
			"the sounds. This is your sanctuary, and you can return here whenever you need comfort and peace. " +
			"Perhaps it's a cozy cabin by a lake, a beautiful garden filled with flowers, or a peaceful beach at " +
			"sunset. Notice every detail of this special place. Feel how secure and loved you are here. This is " +
			"your inner sanctuary, always available to you whenever you need to find peace and safety within yourself.",
	},
	{
		ID:              "sleep-soothe",
		Title:           "Sleep & Soothe",
		DurationMinutes: 10,
		Description:     "Drift into peaceful, restorative sleep",
		ImageURL:        "https://images.unsplash.com/photo-1661002404350-17520a5f0f2a",
		AudioURL:        "SleepAndSoothe.mp3",
		Script: "As you prepare for sleep, let your body sink into comfort. Feel the weight of the day lifting " +
			"from your shoulders. Your breathing naturally slows and deepens. Each exhale takes you further into " +
			"relaxation, preparing your mind and body for restorative, peaceful sleep. Imagine yourself floating " +
			"on a cloud of pure comfort and safety. Feel all tension melting away from your muscles. Your mind is " +
			"becoming quiet and still, like a peaceful lake at twilight. You are ready to drift into deep, healing " +
			"sleep, knowing that you will wake refreshed and renewed.",
	},
	{
		ID:              "self-love",
		Title:           "Self-Love Activation",
		DurationMinutes: 5,
		Description:     "Nurture your inner light and cultivate self-compassion",
		ImageURL:        "https://images.unsplash.com/photo-1498026474556-93048b8493d8",
		AudioURL:        "SelfLove.mp3",
		Script: "Place your hand on your heart and feel its gentle rhythm. This heart has carried you through " +
			"every moment of your life. Send love and gratitude to yourself, for your strength, your resilience, " +
			"your unique gifts. You are worthy of love, especially from yourself. Speak to yourself with the same " +
			"kindness you would offer a dear friend. Acknowledge all the ways you have grown and all the challenges " +
			"you have overcome. You are enough, exactly as you are. Feel this love radiating from your heart, " +
			"filling every cell of your being with warmth and acceptance.",
	},
	{
		ID:              "healing-heart",
		Title:           "Healing Through the Heart",
		DurationMinutes: 10,
		Description:     "Open your heart to healing and renewal",
		ImageURL:        "https://images.unsplash.com/photo-1556647034-7aa9a4ea7437",
		AudioURL:        "Healing.mp3",
		Script: "Breathe into your heart space and feel it expanding with love. If there are wounds that need " +
			"healing, send them gentle compassion. Your heart has an infinite capacity for healing and renewal. " +
			"Trust in your ability to heal and grow stronger through love. Visualize a warm, golden light " +
			"emanating from your heart center. This light has the power to heal any pain, to mend any wounds, to " +
			"restore your spirit. Allow this healing energy to flow through every part of your being, bringing " +
			"peace, wholeness, and renewal. You are resilient, you are strong, and you are capable of profound healing.",
	},
}

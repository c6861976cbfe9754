package catalog

// Theme groups affirmations under a name.
type Theme struct {
	Name         string   `koanf:"name"`
	Affirmations []string `koanf:"affirmations"`
}

// Affirmation is one affirmation with the theme it came from.
type Affirmation struct {
	Theme string
	Text  string
}

var builtinThemes = []Theme{
	{Name: "self-love", Affirmations: []string{
		"I am worthy of love, respect, and all the beautiful things life has to offer.",
		"My heart is a sanctuary of peace, and I deserve to treat myself with infinite kindness.",
		"I am enough, exactly as I am, in this very moment.",
		"My soul radiates a unique light that no one else in the universe can shine.",
		"I deserve the same compassion I so freely give to others.",
		"My imperfections are not flaws. They are the brushstrokes that make me a masterpiece.",
		"I am my own best friend, and I choose to speak to myself with love.",
		"My worth is not determined by my achievements. I am valuable simply because I exist.",
	}},
	{Name: "strength", Affirmations: []string{
		"I have survived 100% of my difficult days so far. I am stronger than I know.",
		"Like a diamond formed under pressure, my challenges are creating something beautiful within me.",
		"I carry within me the power to overcome any obstacle that stands in my way.",
		"My resilience is like the ocean: vast, deep, and capable of weathering any storm.",
		"Every challenge I face is preparing me for a victory I can't yet imagine.",
		"I am not just surviving. I am thriving, growing, and becoming more powerful each day.",
		"My courage doesn't always roar; sometimes it's the quiet voice that says 'I'll try again tomorrow.'",
		"I have the strength of mountains and the flexibility of rivers flowing toward my dreams.",
	}},
	{Name: "abundance", Affirmations: []string{
		"The universe is conspiring to bring me everything I need at the perfect time.",
		"I am a magnet for miracles, opportunities, and abundant blessings.",
		"My potential is infinite, just like the stars that light up the endless sky.",
		"Prosperity flows to me easily and effortlessly from multiple sources.",
		"I deserve abundance in all areas of my life: love, health, wealth, and joy.",
		"Every door that closes is making space for something even more wonderful to enter my life.",
		"I am aligned with the frequency of abundance and success.",
		"The universe celebrates my dreams and supports my highest good.",
	}},
	{Name: "peace", Affirmations: []string{
		"In this moment, I choose peace over worry, love over fear, and trust over doubt.",
		"My breath is an anchor that brings me back to the calm center of my being.",
		"Like a still lake reflecting the sky, my mind can find perfect tranquility.",
		"I release what I cannot control and embrace the serenity of acceptance.",
		"Peace is not the absence of storms. It's finding calm within them, and I have that power.",
		"My inner sanctuary is always available to me, no matter what chaos surrounds me.",
		"I am safe, I am loved, and I am exactly where I need to be.",
		"With each exhale, I release tension; with each inhale, I welcome peace.",
	}},
	{Name: "growth", Affirmations: []string{
		"Every experience, whether joyful or challenging, is helping me evolve into my highest self.",
		"I am not the same person I was yesterday. I am constantly growing and expanding.",
		"My journey is unique, and I trust the process of my own unfolding.",
		"Like a tree reaching toward the sun, I naturally grow toward my greatest potential.",
		"I embrace change as the universe's way of guiding me toward something better.",
		"My willingness to learn and grow makes me unstoppable.",
		"Every setback is a setup for an even greater comeback in my life.",
		"I am becoming the person I was always meant to be.",
	}},
	{Name: "cosmic", Affirmations: []string{
		"I am made of stardust and carry the wisdom of the cosmos within my soul.",
		"Like the moon influences the tides, my presence creates ripples of positive change.",
		"I am a unique constellation in the galaxy of humanity, shining my own special light.",
		"The same force that moves planets and creates galaxies flows through me.",
		"I am both a drop in the ocean and the entire ocean in a drop.",
		"My energy is connected to every star, every planet, every living being in existence.",
		"I am a cosmic miracle, a perfect expression of the universe experiencing itself.",
		"Like the aurora dancing across the sky, my spirit is a beautiful display of divine energy.",
	}},
	{Name: "purpose", Affirmations: []string{
		"My life has meaning and purpose that extends far beyond what I can currently see.",
		"I am here for a reason, and the world needs exactly what I have to offer.",
		"My unique gifts and talents are meant to be shared with the world.",
		"Every step I take is leading me closer to my divine purpose.",
		"I make a difference simply by being authentically myself.",
		"My story matters, my voice matters, and my presence matters.",
		"I am exactly where I need to be on my journey of purpose and meaning.",
		"The universe has invested in me because I have something special to contribute.",
	}},
	{Name: "gratitude", Affirmations: []string{
		"My heart overflows with gratitude for all the blessings, seen and unseen, in my life.",
		"Every breath is a gift, every heartbeat a miracle, every moment a treasure that I cherish.",
		"I attract more of what I appreciate, and my gratitude multiplies my joy.",
		"Even in difficult times, I can find something to be thankful for.",
		"My grateful heart is a magnet for abundance and happiness.",
		"I appreciate the journey as much as the destination.",
		"Gratitude transforms what I have into enough, and more than enough.",
		"My thankful spirit illuminates the beauty in ordinary moments.",
	}},
}

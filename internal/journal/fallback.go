package journal

import (
	"math/rand/v2"
	"sync"
)

const maxLocalFollowUps = 2

// ApologyText is shown when no response could be produced at all.
const ApologyText = "I'm here to listen and support you. Sometimes technology has hiccups, " +
	"but your feelings are always valid and important."

var crisisResponses = []string{
	"I can sense you're going through something really difficult right now. Your feelings are completely valid, and I want you to know that you're not alone. Sometimes when emotions feel overwhelming, it can help to reach out to someone you trust or a professional counselor. In this moment, let's focus on your breathing. Can you take three slow, deep breaths with me?",
	"What you're experiencing sounds incredibly challenging, and I'm honored that you've shared this with me. When we're in intense emotional pain, it's important to remember that these feelings, while very real and valid, are temporary. You've survived difficult times before, and you have the strength to get through this too. Would it help to think of one small thing you can do right now to take care of yourself?",
	"I hear the depth of pain in your words, and I want you to know that reaching out by writing here shows incredible courage. Sometimes our darkest moments can feel endless, but like the night sky, even in the deepest darkness, there are still stars. If these feelings become too overwhelming, please consider talking to a counselor, trusted friend, or calling a support helpline. Right now, you're safe, and you matter.",
}

var emotionResponses = map[string][]string{
	EmotionAnxiety: {
		"I can feel the weight of worry in your words. Anxiety often feels like carrying the weight of tomorrow's problems today. What if we tried to anchor ourselves in this present moment? Notice five things you can see around you, four things you can touch, three things you can hear. Your nervous system is trying to protect you, but right now, in this moment, you are safe.",
		"Anxiety can feel like a storm in your mind, with thoughts swirling and spinning. But remember, you are not your anxiety. You are the observer of these thoughts. Like clouds passing through the sky, these worried thoughts will move through you. What's one thing that usually helps you feel more grounded?",
		"The anxious mind often travels to futures that may never happen. Your brain is trying to solve problems that don't exist yet. Can we bring your attention back to right now? What's one thing going well in your life today, even if it's small?",
	},
	EmotionSadness: {
		"I can feel the heaviness in your heart through your words. Sadness is like rain: it feels overwhelming when you're in it, but it also nourishes growth. Your tears are not a sign of weakness; they're a sign of your deep capacity to feel and love. It's okay to sit with this sadness for a while. What would comfort feel like for you right now?",
		"There's a profound tenderness in sadness that shows how deeply you care. Like the moon's phases, our emotions have their own cycles. This sadness you're feeling is valid and temporary. You don't have to rush through it or fix it. Sometimes we need to honor our sadness as part of our healing journey.",
		"Sadness can feel like being underwater, where everything is muffled and heavy. But even in the deepest ocean, there's still light filtering down from above. Your sadness tells a story of something that mattered to you. Can you be gentle with yourself as you navigate these deep waters?",
	},
	EmotionAnger: {
		"I can sense the fire of anger in your words. Anger often carries important messages. It tells us when our boundaries have been crossed or when something matters deeply to us. Like a volcano, this energy needs a healthy way to be expressed. What is your anger trying to tell you? What boundary or value is it protecting?",
		"Anger can feel like lightning: intense, powerful, and demanding attention. It's okay to feel angry; it means you care about something important. The key is channeling this energy in a way that serves you. Can you feel where this anger lives in your body? Sometimes acknowledging its physical presence can help us understand its message.",
		"Your anger is valid, and it's telling you something important about what you value and need. Like fire, anger can be destructive or it can be the spark that ignites positive change. What would it look like to honor this anger while also taking care of yourself?",
	},
	EmotionJoy: {
		"I can feel the light radiating from your words! Joy is like sunshine. It not only brightens your own world but also warms everyone around you. These moments of happiness are gifts to be savored. What do you think has contributed to this beautiful feeling? How can you carry a piece of this joy with you?",
		"Your happiness is contagious, even through text! Joy reminds us of life's magic and possibility. Like a flower blooming, your joy is a natural expression of your inner light. What aspects of this joyful experience do you want to remember and revisit when you need a boost?",
		"There's something so beautiful about witnessing someone's joy. Your positive energy is like ripples in a pond, spreading outward in ways you might not even realize. How does it feel to be in this space of happiness? What gratitude is arising for you?",
	},
	EmotionFatigue: {
		"I can hear the weariness in your words, like you're carrying a heavy backpack that you've been wearing for too long. Exhaustion is your body and mind's way of asking for rest and restoration. You don't have to earn the right to be tired. It's okay to acknowledge that you need to slow down. What would true rest look like for you?",
		"Feeling drained is like a phone battery that's been running too many apps for too long. Your energy is precious, and it sounds like you've been giving a lot of yourself. What if we thought about what activities or people actually recharge you versus what depletes you? You deserve to prioritize your own restoration.",
		"Tiredness can be physical, emotional, or spiritual, and it sounds like you might be experiencing all three. Like a garden that needs both sun and rest to grow, you need periods of activity and periods of restoration. What's one small way you could be gentler with yourself today?",
	},
}

// Emotions that have their own responses, in priority order.
var respondingEmotions = []string{EmotionAnxiety, EmotionSadness, EmotionAnger, EmotionJoy, EmotionFatigue}

var relationshipResponses = []string{
	"Relationships are like gardens. They require attention, patience, and sometimes weathering storms together. Whether you're celebrating connection or navigating challenges, remember that healthy relationships involve two whole people choosing to grow together. What does your heart need most in your relationships right now?",
	"The people we love have the power to bring us our greatest joy and sometimes our deepest challenges. This is the beautiful, complex nature of human connection. Your feelings about your relationships are valid, whatever they may be. What would love look like in this situation, both love for others and love for yourself?",
	"Relationships mirror back to us parts of ourselves we might not otherwise see. Whether you're experiencing harmony or conflict, there are gifts in every relationship dynamic. What is this relationship teaching you about yourself? How can you show up authentically while also honoring your own needs?",
}

var defaultResponses = []string{
	"Thank you for trusting me with your thoughts and feelings. I can sense there's a lot happening in your inner world right now. Like a complex piece of music, our emotions often have multiple layers and melodies playing at once. What feels most important for you to explore or understand right now?",
	"Your willingness to share your inner experience shows such courage and self-awareness. Life rarely fits into neat categories, and neither do our feelings. You're navigating something real and meaningful. What support do you need as you move through this experience?",
	"I'm holding space for everything you're feeling right now: the complexity, the contradictions, the uncertainty. Sometimes we don't need to figure everything out; sometimes we just need to be witnessed and understood. You are seen, you are heard, and your experience matters.",
	"There's wisdom in taking time to reflect on your inner world like this. Your thoughts and feelings are like weather patterns, constantly shifting and changing. What would it feel like to approach yourself with the same compassion you'd offer a dear friend going through something similar?",
}

var (
	anxietyQuestions = []string{
		"What would it feel like if you could let go of trying to control this situation?",
		"When you imagine your wisest, most compassionate self, what advice would they give you?",
		"What's one small step you could take today that would feel nurturing?",
	}
	sadnessQuestions = []string{
		"What would you want to say to this sadness if it were a friend visiting you?",
		"How can you honor what you're grieving while also caring for your present self?",
		"What does your heart need most right now?",
	}
	relationshipQuestions = []string{
		"What boundaries would serve you well in this relationship?",
		"How can you show up authentically while also protecting your energy?",
		"What would love look like in this situation?",
	}
	// DefaultQuestions are offered when nothing more specific applies.
	DefaultQuestions = []string{
		"What would it feel like to approach this situation with curiosity instead of judgment?",
		"If you could give yourself exactly what you need right now, what would that be?",
		"What's one thing you're grateful for, even in the midst of this challenge?",
	}
)

// Fallback writes responses locally from keyword analysis.
type Fallback struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFallback creates a local responder. A nil rng uses a random seed.
func NewFallback(rng *rand.Rand) *Fallback {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Fallback{rng: rng}
}

// Response picks a response for the analysis: crisis support first, then
// the first detected emotion, then relationships, then a default.
func (f *Fallback) Response(a Analysis) string {
	if a.NeedsSupport && a.Intensity == IntensityHigh {
		return f.pick(crisisResponses)
	}
	for _, e := range respondingEmotions {
		if a.HasEmotion(e) {
			return f.pick(emotionResponses[e])
		}
	}
	if a.HasTheme(ThemeRelationships) {
		return f.pick(relationshipResponses)
	}
	return f.pick(defaultResponses)
}

// FollowUps returns up to two questions for the analysis.
func (f *Fallback) FollowUps(a Analysis) []string {
	var qs []string
	if a.HasEmotion(EmotionAnxiety) {
		qs = append(qs, anxietyQuestions...)
	}
	if a.HasEmotion(EmotionSadness) {
		qs = append(qs, sadnessQuestions...)
	}
	if a.HasTheme(ThemeRelationships) {
		qs = append(qs, relationshipQuestions...)
	}
	if len(qs) == 0 {
		qs = DefaultQuestions
	}
	return append([]string(nil), qs[:min(len(qs), maxLocalFollowUps)]...)
}

func (f *Fallback) pick(options []string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return options[f.rng.IntN(len(options))]
}

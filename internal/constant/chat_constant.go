package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"
)

// Terminal gate replies. These are user-visible and must stay stable across
// releases because downstream tests and clients match on them.
const (
	HarmfulQueryResponse = "I'm not able to provide advice on that topic. " +
		"Please consult a healthcare professional for guidance."

	OffTopicResponse = "I'm your health and fitness coach, so I can help with " +
		"nutrition, workouts, and recovery. What would you like to know?"

	GreetingResponse = "Hi there! I'm your personal coaching assistant. " +
		"Ask me anything about workouts, nutrition, or recovery."

	ThanksResponse = "You're welcome! Let me know if there's anything else " +
		"I can help you with."

	FarewellResponse = "Take care! Come back any time you have questions " +
		"about training, food, or rest."

	StatusCheckResponse = "I'm doing great and ready to help. " +
		"What would you like to work on today?"

	AcknowledgmentResponse = "Got it. Is there anything about your training, " +
		"nutrition, or recovery I can help with?"

	NoResponderFallback = "I'm not sure how to help with that."

	ResponderApology = "I apologize, but I'm having trouble generating a " +
		"response right now. Please try again in a moment."

	OnboardingResponse = "Welcome! I'm your personal coaching assistant. " +
		"Before we get started, I'd like to learn a bit about you. " +
		"Could you tell me your age, height, weight, and primary fitness goal? " +
		"Also, do you have any food allergies, intolerances, or injuries I should know about?"
)

package classify

// Trigger vocabulary for the weighted keyword classifier. The tiers mirror how
// strongly a phrase correlates with confirmed scam submissions: prize/urgency
// bait is near-certain, payment-wallet vocabulary is common but ambiguous,
// greetings and transfer talk only matter in combination.

// highPriorityKeywords weigh 0.25 per hit
var highPriorityKeywords = []string{
	"congratulations", "won", "winner", "prize", "lottery", "lucky draw",
	"claim now", "claim your", "expired", "expire soon", "urgent action",
	"verify now", "verify immediately", "confirm now", "suspended account",
	"blocked account", "unusual activity", "unauthorized", "click here immediately",
	"limited time offer", "act now", "last chance", "rupees",
	"lakh", "crore", "million", "deposit", "withdraw",
}

// mediumPriorityKeywords weigh 0.15 per hit
var mediumPriorityKeywords = []string{
	"otp", "verify", "blocked", "suspended", "urgent", "reward", "offer",
	"khalti", "esewa", "imepay", "fonepay", "bank", "account", "password",
	"pin", "code", "security", "update", "confirm", "click here", "link",
	"whatsapp", "customer care",
}

// lowPriorityKeywords weigh 0.08 per hit
var lowPriorityKeywords = []string{
	"dear", "hello", "congratulation", "transfer", "payment",
	"cash", "selected", "lucky",
}

// suspiciousPatterns weigh 0.20 per hit
var suspiciousPatterns = []string{
	"tap to learn more",
	"call me",
	"contact number",
	"whatsapp number",
	"lottery no",
	"draw offer",
}

// moneyTerms add a single +0.10 when any appears
var moneyTerms = []string{"rs", "rupees", "lakh", "crore"}

// urgencyWords add +0.15 when two or more appear
var urgencyWords = []string{"urgent", "immediately", "now", "today", "expire", "last chance"}

package risk

// scenario selects the human-readable campaign description for a flag set.
// This is a fixed lookup, not text generation: the same flags always produce
// the same sentence. Order matters; the most specific combination wins.
func scenario(f Flags, detected bool) string {
	switch {
	case !detected:
		return "Normal activity"
	case f.OTPFocus && f.RecentSurge:
		return "Likely OTP-phishing campaign following a compromise"
	case f.MultiCategoryAttack && f.RecentSurge:
		return "Coordinated multi-category scam campaign in progress"
	case f.VictimSelfReport && f.OTPFocus:
		return "Possible account takeover with victims reporting unauthorized use"
	case f.VictimSelfReport:
		return "Possible hijacked number reported by its owner or victims"
	case f.HighProbCluster && f.OTPFocus:
		return "Concentrated OTP-theft attempts with high-confidence scam content"
	default:
		return "Possible post-SIM-swap scam or coordinated attack"
	}
}

package validation

// UserRules guards user registration. The rule chains mirror the original
// API contract: a missing username reports both the required and the
// non-empty failure.
func UserRules() RuleSet {
	return RuleSet{
		Required("username"),
		NonEmpty("username"),
		Required("email"),
		IsEmail("email"),
		Required("password"),
		MinLength("password", 6),
	}
}

// GameRules guards game creation and updates. Only the title is mandatory.
func GameRules() RuleSet {
	return RuleSet{
		Required("titulo"),
		NonEmpty("titulo"),
		IsString("genero"),
		NumericRange("puntuacion", 0, 100),
	}
}

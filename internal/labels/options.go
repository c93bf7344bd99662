package labels

// Option lists in questionnaire display order.

func GoalOptions() []string {
	return []string{GoalEnergyClarity, GoalSleepRecovery, GoalLongevity, GoalStressWorkload}
}

func TrainingOptions() []string {
	return []string{Training0To1, Training2To3, Training4To6, Training6Plus}
}

func AgeOptions() []string {
	return []string{Age18To29, Age30To39, Age40To49, Age50To65}
}

func SleepOptions() []string {
	return []string{SleepConsistent, SleepInconsistent, SleepTroubleFalling, SleepWakingNight, SleepShort}
}

func CaffeineOptions() []string {
	return []string{CaffeineLow, CaffeineModerateBeforeNoon, CaffeineAfterNoon, CaffeineStimulants}
}

func ConstraintOptions() []string {
	return []string{
		ConstraintMinimalPills,
		ConstraintFrequentTravel,
		ConstraintSensitiveStomach,
		ConstraintVegetarian,
		ConstraintAvoidStim,
		ConstraintPowders,
		ConstraintNone,
	}
}

func SensitivityOptions() []string {
	return []string{
		SensitivityBloodThinners,
		SensitivityThyroid,
		SensitivityKidney,
		SensitivityMagnesium,
		SensitivityMigraines,
		SensitivityNone,
	}
}

package icp

// Goal is the respondent's primary optimization goal.
type Goal string

const (
	GoalEnergyClarity  Goal = "energy_clarity"
	GoalSleepRecovery  Goal = "sleep_recovery"
	GoalLongevity      Goal = "longevity"
	GoalStressWorkload Goal = "stress_workload"
)

// TrainingFrequency is the number of training days per week.
type TrainingFrequency string

const (
	Training0To1  TrainingFrequency = "0_1"
	Training2To3  TrainingFrequency = "2_3"
	Training4To6  TrainingFrequency = "4_6"
	Training6Plus TrainingFrequency = "6_plus"
)

// AgeBand is the respondent's age bracket.
type AgeBand string

const (
	Age18To29 AgeBand = "18_29"
	Age30To39 AgeBand = "30_39"
	Age40To49 AgeBand = "40_49"
	Age50To65 AgeBand = "50_65"
)

// SleepBaseline describes typical sleep.
type SleepBaseline string

const (
	SleepConsistent     SleepBaseline = "consistent"
	SleepInconsistent   SleepBaseline = "inconsistent"
	SleepTroubleFalling SleepBaseline = "trouble_falling"
	SleepWakingNight    SleepBaseline = "waking_night"
	SleepShort          SleepBaseline = "short_sleep"
)

// CaffeineUse describes daily caffeine and stimulant intake.
type CaffeineUse string

const (
	CaffeineLow                CaffeineUse = "low"
	CaffeineModerateBeforeNoon CaffeineUse = "moderate_before_noon"
	CaffeineAfterNoon          CaffeineUse = "after_noon"
	CaffeineStimulants         CaffeineUse = "stimulants"
)

// Constraint is a product constraint the protocol must fit.
type Constraint string

const (
	ConstraintMinimalPills     Constraint = "minimal_pills"
	ConstraintFrequentTravel   Constraint = "frequent_travel"
	ConstraintAvoidStim        Constraint = "avoid_stim"
	ConstraintSensitiveStomach Constraint = "sensitive_stomach"
)

// Goals returns every goal code.
func Goals() []Goal {
	return []Goal{GoalEnergyClarity, GoalSleepRecovery, GoalLongevity, GoalStressWorkload}
}

// TrainingFrequencies returns every training frequency code.
func TrainingFrequencies() []TrainingFrequency {
	return []TrainingFrequency{Training0To1, Training2To3, Training4To6, Training6Plus}
}

// AgeBands returns every age band code.
func AgeBands() []AgeBand {
	return []AgeBand{Age18To29, Age30To39, Age40To49, Age50To65}
}

// SleepBaselines returns every sleep baseline code.
func SleepBaselines() []SleepBaseline {
	return []SleepBaseline{SleepConsistent, SleepInconsistent, SleepTroubleFalling, SleepWakingNight, SleepShort}
}

// CaffeineUses returns every caffeine code.
func CaffeineUses() []CaffeineUse {
	return []CaffeineUse{CaffeineLow, CaffeineModerateBeforeNoon, CaffeineAfterNoon, CaffeineStimulants}
}

// Constraints returns every constraint code.
func Constraints() []Constraint {
	return []Constraint{ConstraintMinimalPills, ConstraintFrequentTravel, ConstraintAvoidStim, ConstraintSensitiveStomach}
}

// Valid reports whether g is a known goal code.
func (g Goal) Valid() bool {
	_, ok := goalScores[g]
	return ok
}

// Valid reports whether t is a known training frequency code.
func (t TrainingFrequency) Valid() bool {
	_, ok := trainingScores[t]
	return ok
}

// Valid reports whether a is a known age band code.
func (a AgeBand) Valid() bool {
	_, ok := ageScores[a]
	return ok
}

// Valid reports whether s is a known sleep baseline code.
func (s SleepBaseline) Valid() bool {
	_, ok := sleepScores[s]
	return ok
}

// Valid reports whether c is a known caffeine code.
func (c CaffeineUse) Valid() bool {
	_, ok := caffeineScores[c]
	return ok
}

// Valid reports whether c is a known constraint code.
func (c Constraint) Valid() bool {
	_, ok := constraintScores[c]
	return ok
}

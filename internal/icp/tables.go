package icp

// Contribution is a sparse set of points added to categories by one rule.
// Categories absent from a Contribution receive nothing.
type Contribution map[Category]int

// Scoring tables. These are product rules and must not be mutated at runtime.
var (
	goalScores = map[Goal]Contribution{
		GoalEnergyClarity:  {CategoryExec: 3, CategoryMidlife: 1, CategoryKnowledge: 2},
		GoalSleepRecovery:  {CategoryExec: 2, CategoryAthlete: 1, CategoryMetabolic: 1, CategoryMidlife: 2, CategoryKnowledge: 1},
		GoalLongevity:      {CategoryExec: 3, CategoryMetabolic: 1, CategoryMidlife: 3},
		GoalStressWorkload: {CategoryExec: 2, CategoryKnowledge: 3},
	}

	trainingScores = map[TrainingFrequency]Contribution{
		Training0To1:  {CategoryExec: 2, CategoryMetabolic: 2, CategoryMidlife: 2, CategoryKnowledge: 1},
		Training2To3:  {CategoryExec: 2, CategoryAthlete: 1, CategoryMetabolic: 2, CategoryMidlife: 1, CategoryKnowledge: 1},
		Training4To6:  {CategoryAthlete: 4},
		Training6Plus: {CategoryAthlete: 5},
	}

	ageScores = map[AgeBand]Contribution{
		Age18To29: {CategoryAthlete: 2, CategoryKnowledge: 2},
		Age30To39: {CategoryExec: 2, CategoryAthlete: 2, CategoryMetabolic: 1, CategoryKnowledge: 2},
		Age40To49: {CategoryExec: 3, CategoryAthlete: 1, CategoryMetabolic: 2, CategoryMidlife: 3, CategoryKnowledge: 1},
		Age50To65: {CategoryExec: 3, CategoryMetabolic: 3, CategoryMidlife: 4},
	}

	sleepScores = map[SleepBaseline]Contribution{
		SleepConsistent:     {CategoryExec: 2, CategoryAthlete: 1, CategoryMetabolic: 1, CategoryMidlife: 2},
		SleepInconsistent:   {CategoryExec: 1, CategoryMidlife: 1, CategoryKnowledge: 2},
		SleepTroubleFalling: {CategoryExec: 1, CategoryMidlife: 1, CategoryKnowledge: 3},
		SleepWakingNight:    {CategoryExec: 1, CategoryMetabolic: 1, CategoryMidlife: 2, CategoryKnowledge: 2},
		SleepShort:          {CategoryMetabolic: 1, CategoryMidlife: 1, CategoryKnowledge: 3},
	}

	caffeineScores = map[CaffeineUse]Contribution{
		CaffeineLow:                {CategoryExec: 2, CategoryMetabolic: 1, CategoryMidlife: 2},
		CaffeineModerateBeforeNoon: {CategoryExec: 1, CategoryAthlete: 1, CategoryMetabolic: 1, CategoryMidlife: 1, CategoryKnowledge: 1},
		CaffeineAfterNoon:          {CategoryKnowledge: 3},
		CaffeineStimulants:         {CategoryAthlete: 1, CategoryKnowledge: 4},
	}

	metabolicScores = map[bool]Contribution{
		true:  {CategoryMetabolic: 6, CategoryMidlife: 1},
		false: {CategoryExec: 1, CategoryAthlete: 1, CategoryMidlife: 1, CategoryKnowledge: 1},
	}

	constraintScores = map[Constraint]Contribution{
		ConstraintMinimalPills:     {CategoryExec: 2, CategoryMetabolic: 1, CategoryMidlife: 1, CategoryKnowledge: 1},
		ConstraintFrequentTravel:   {CategoryExec: 1, CategoryAthlete: 1, CategoryMetabolic: 1, CategoryKnowledge: 1},
		ConstraintAvoidStim:        {CategoryExec: 2, CategoryMidlife: 1},
		ConstraintSensitiveStomach: {CategoryExec: 1, CategoryMetabolic: 1, CategoryMidlife: 1},
	}
)

package gym

type ExerciseCategory string

const (
	CategoryChest     ExerciseCategory = "chest"
	CategoryBack      ExerciseCategory = "back"
	CategoryLegs      ExerciseCategory = "legs"
	CategoryShoulders ExerciseCategory = "shoulders"
	CategoryArms      ExerciseCategory = "arms"
	CategoryCore      ExerciseCategory = "core"
	CategoryCardio    ExerciseCategory = "cardio"
	CategoryOther     ExerciseCategory = "other"
)

var AllCategories = []ExerciseCategory{
	CategoryChest,
	CategoryBack,
	CategoryLegs,
	CategoryShoulders,
	CategoryArms,
	CategoryCore,
	CategoryCardio,
	CategoryOther,
}

func (c ExerciseCategory) IsValid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}

type EquipmentType string

const (
	EquipmentBarbell    EquipmentType = "barbell"
	EquipmentDumbbell   EquipmentType = "dumbbell"
	EquipmentMachine    EquipmentType = "machine"
	EquipmentBodyweight EquipmentType = "bodyweight"
	EquipmentCable      EquipmentType = "cable"
	EquipmentBand       EquipmentType = "band"
	EquipmentKettlebell EquipmentType = "kettlebell"
	EquipmentOther      EquipmentType = "other"
)

var AllEquipmentTypes = []EquipmentType{
	EquipmentBarbell,
	EquipmentDumbbell,
	EquipmentMachine,
	EquipmentBodyweight,
	EquipmentCable,
	EquipmentBand,
	EquipmentKettlebell,
	EquipmentOther,
}

func (e EquipmentType) IsValid() bool {
	for _, v := range AllEquipmentTypes {
		if e == v {
			return true
		}
	}
	return false
}

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

var AllFrequencies = []Frequency{
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyCustom,
}

func (f Frequency) IsValid() bool {
	for _, v := range AllFrequencies {
		if f == v {
			return true
		}
	}
	return false
}

// OneRepMax estimates the one-rep max with the Brzycki formula
// weight * 36 / (37 - reps). The formula diverges as reps approach 37, so
// reps are capped at 36; non-positive inputs yield 0.
func OneRepMax(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	if reps >= 37 {
		reps = 36
	}
	return weight * 36 / float64(37-reps)
}

// SetVolume is weight times reps for a single set.
func SetVolume(weight float64, reps int) float64 {
	return weight * float64(reps)
}

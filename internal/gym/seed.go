package gym

// defaultExercises is the shared pool inserted by the seed operation. Entries
// are app-provided, so IsCustom stays false and no owner is set.
var defaultExercises = []*Exercise{
	{
		Name:         "Bench Press",
		Category:     CategoryChest,
		Equipment:    EquipmentBarbell,
		Description:  "A compound exercise that targets the chest, shoulders, and triceps.",
		Instructions: "Lie on a flat bench, grip the barbell with hands slightly wider than shoulder-width apart, lower the bar to your chest, and press back up.",
	},
	{
		Name:         "Incline Bench Press",
		Category:     CategoryChest,
		Equipment:    EquipmentBarbell,
		Description:  "Targets the upper chest, shoulders, and triceps.",
		Instructions: "Perform a bench press on an incline bench set to 15-30 degrees.",
	},
	{
		Name:         "Dumbbell Fly",
		Category:     CategoryChest,
		Equipment:    EquipmentDumbbell,
		Description:  "Isolation exercise for the chest.",
		Instructions: "Lie on a flat bench with dumbbells extended above your chest, lower them out to the sides in an arc motion, then bring them back together.",
	},
	{
		Name:         "Push-Up",
		Category:     CategoryChest,
		Equipment:    EquipmentBodyweight,
		Description:  "Bodyweight exercise for chest, shoulders, and triceps.",
		Instructions: "Start in a plank position with hands shoulder-width apart, lower your body until your chest nearly touches the floor, then push back up.",
	},
	{
		Name:         "Cable Crossover",
		Category:     CategoryChest,
		Equipment:    EquipmentCable,
		Description:  "Isolation exercise for the chest that provides constant tension.",
		Instructions: "Stand between two cable machines, grab the handles, and bring your hands together in front of your chest in an arc motion.",
	},
	{
		Name:         "Pull-Up",
		Category:     CategoryBack,
		Equipment:    EquipmentBodyweight,
		Description:  "Compound exercise for the back and biceps.",
		Instructions: "Hang from a bar with palms facing away, pull yourself up until your chin is over the bar, then lower back down.",
	},
	{
		Name:         "Bent-Over Row",
		Category:     CategoryBack,
		Equipment:    EquipmentBarbell,
		Description:  "Compound exercise for the back and biceps.",
		Instructions: "Bend at the hips with a slight bend in your knees, grip the barbell shoulder-width apart, and pull it toward your lower chest.",
	},
	{
		Name:         "Lat Pulldown",
		Category:     CategoryBack,
		Equipment:    EquipmentMachine,
		Description:  "Machine exercise targeting the latissimus dorsi.",
		Instructions: "Sit at a lat pulldown machine, grab the bar with a wide grip, and pull it down to your upper chest.",
	},
	{
		Name:         "Seated Cable Row",
		Category:     CategoryBack,
		Equipment:    EquipmentCable,
		Description:  "Compound exercise for the middle back.",
		Instructions: "Sit at a cable row machine, grab the handle, and pull it toward your lower abdomen while keeping your back straight.",
	},
	{
		Name:         "Deadlift",
		Category:     CategoryBack,
		Equipment:    EquipmentBarbell,
		Description:  "Compound exercise for the entire posterior chain.",
		Instructions: "Stand with feet hip-width apart, bend down and grip the barbell, then lift by straightening your hips and knees.",
	},
	{
		Name:         "Squat",
		Category:     CategoryLegs,
		Equipment:    EquipmentBarbell,
		Description:  "Compound exercise for the entire lower body.",
		Instructions: "Place a barbell on your upper back, bend your knees and hips to lower your body, then return to standing.",
	},
	{
		Name:         "Leg Press",
		Category:     CategoryLegs,
		Equipment:    EquipmentMachine,
		Description:  "Machine exercise targeting the quadriceps, hamstrings, and glutes.",
		Instructions: "Sit in the leg press machine, place your feet shoulder-width apart on the platform, and press it away by extending your knees.",
	},
	{
		Name:         "Romanian Deadlift",
		Category:     CategoryLegs,
		Equipment:    EquipmentBarbell,
		Description:  "Exercise targeting the hamstrings and lower back.",
		Instructions: "Hold a barbell at hip level, hinge at the hips while keeping your back straight, lower the bar along your legs, then return to standing.",
	},
	{
		Name:         "Leg Extension",
		Category:     CategoryLegs,
		Equipment:    EquipmentMachine,
		Description:  "Isolation exercise for the quadriceps.",
		Instructions: "Sit in a leg extension machine, hook your feet under the pad, and extend your knees to lift the weight.",
	},
	{
		Name:         "Leg Curl",
		Category:     CategoryLegs,
		Equipment:    EquipmentMachine,
		Description:  "Isolation exercise for the hamstrings.",
		Instructions: "Lie on a leg curl machine, place your legs under the pad, and curl the weight by bending your knees.",
	},
	{
		Name:         "Overhead Press",
		Category:     CategoryShoulders,
		Equipment:    EquipmentBarbell,
		Description:  "Compound exercise for the shoulders and triceps.",
		Instructions: "Stand with a barbell at shoulder height, press it overhead until your arms are fully extended, then lower it back to your shoulders.",
	},
	{
		Name:         "Lateral Raise",
		Category:     CategoryShoulders,
		Equipment:    EquipmentDumbbell,
		Description:  "Isolation exercise for the lateral deltoids.",
		Instructions: "Stand with dumbbells at your sides, raise them out to the sides until they reach shoulder level, then lower them back down.",
	},
	{
		Name:         "Front Raise",
		Category:     CategoryShoulders,
		Equipment:    EquipmentDumbbell,
		Description:  "Isolation exercise for the anterior deltoids.",
		Instructions: "Stand with dumbbells in front of your thighs, raise them to shoulder level in front of you, then lower them back down.",
	},
	{
		Name:         "Face Pull",
		Category:     CategoryShoulders,
		Equipment:    EquipmentCable,
		Description:  "Exercise for the rear deltoids and upper back.",
		Instructions: "Stand in front of a cable machine with a rope attachment, pull the rope toward your face while keeping your elbows high.",
	},
	{
		Name:         "Upright Row",
		Category:     CategoryShoulders,
		Equipment:    EquipmentBarbell,
		Description:  "Compound exercise for the shoulders and traps.",
		Instructions: "Stand with a barbell at your thighs, pull it up toward your chin while keeping it close to your body, then lower it back down.",
	},
	{
		Name:         "Bicep Curl",
		Category:     CategoryArms,
		Equipment:    EquipmentDumbbell,
		Description:  "Isolation exercise for the biceps.",
		Instructions: "Stand with dumbbells at your sides, curl them up toward your shoulders, then lower them back down.",
	},
	{
		Name:         "Tricep Pushdown",
		Category:     CategoryArms,
		Equipment:    EquipmentCable,
		Description:  "Isolation exercise for the triceps.",
		Instructions: "Stand in front of a cable machine with a bar attachment at chest height, push the bar down by extending your elbows, then return to the starting position.",
	},
	{
		Name:         "Hammer Curl",
		Category:     CategoryArms,
		Equipment:    EquipmentDumbbell,
		Description:  "Variation of the bicep curl targeting the brachialis muscle.",
		Instructions: "Stand with dumbbells at your sides with a neutral grip (palms facing each other), curl them up toward your shoulders, then lower them back down.",
	},
	{
		Name:         "Skull Crusher",
		Category:     CategoryArms,
		Equipment:    EquipmentBarbell,
		Description:  "Isolation exercise for the triceps.",
		Instructions: "Lie on a bench with a barbell held at arms length above your chest, lower it toward your forehead by bending at the elbows, then extend your arms to return to the starting position.",
	},
	{
		Name:         "Preacher Curl",
		Category:     CategoryArms,
		Equipment:    EquipmentBarbell,
		Description:  "Isolation exercise for the biceps using a preacher bench.",
		Instructions: "Sit at a preacher bench with your arms resting on the pad, hold a barbell with an underhand grip, curl it up, then lower it back down.",
	},
	{
		Name:         "Crunch",
		Category:     CategoryCore,
		Equipment:    EquipmentBodyweight,
		Description:  "Basic exercise for the abdominal muscles.",
		Instructions: "Lie on your back with knees bent, place your hands behind your head, and curl your upper body toward your knees.",
	},
	{
		Name:         "Plank",
		Category:     CategoryCore,
		Equipment:    EquipmentBodyweight,
		Description:  "Isometric exercise for core stability.",
		Instructions: "Start in a push-up position but with your weight on your forearms, hold your body in a straight line from head to heels.",
	},
	{
		Name:         "Russian Twist",
		Category:     CategoryCore,
		Equipment:    EquipmentBodyweight,
		Description:  "Exercise for the obliques.",
		Instructions: "Sit on the floor with knees bent and feet off the ground, twist your torso from side to side.",
	},
	{
		Name:         "Leg Raise",
		Category:     CategoryCore,
		Equipment:    EquipmentBodyweight,
		Description:  "Exercise for the lower abdominals.",
		Instructions: "Lie on your back, place your hands at your sides or under your lower back, and lift your legs up toward the ceiling.",
	},
	{
		Name:         "Hanging Knee Raise",
		Category:     CategoryCore,
		Equipment:    EquipmentBodyweight,
		Description:  "Advanced exercise for the abdominals.",
		Instructions: "Hang from a pull-up bar, bring your knees up toward your chest, then lower them back down.",
	},
	{
		Name:         "Running",
		Category:     CategoryCardio,
		Equipment:    EquipmentOther,
		Description:  "Cardiovascular exercise.",
		Instructions: "Run at a steady pace for your desired duration.",
	},
	{
		Name:         "Jumping Rope",
		Category:     CategoryCardio,
		Equipment:    EquipmentOther,
		Description:  "High-intensity cardiovascular exercise.",
		Instructions: "Jump rope at a steady pace, maintaining light landings on the balls of your feet.",
	},
	{
		Name:         "Cycling",
		Category:     CategoryCardio,
		Equipment:    EquipmentMachine,
		Description:  "Low-impact cardiovascular exercise.",
		Instructions: "Cycle at a steady pace with resistance that challenges you but allows you to maintain proper form.",
	},
	{
		Name:         "Rowing",
		Category:     CategoryCardio,
		Equipment:    EquipmentMachine,
		Description:  "Full-body cardiovascular exercise.",
		Instructions: "Sit on a rowing machine, push with your legs, pull with your arms, and lean back slightly at the end of each stroke.",
	},
	{
		Name:         "Stair Climbing",
		Category:     CategoryCardio,
		Equipment:    EquipmentMachine,
		Description:  "Cardiovascular exercise that targets the lower body.",
		Instructions: "Use a stair climber machine, maintain an upright posture, and step at a comfortable pace.",
	},
}

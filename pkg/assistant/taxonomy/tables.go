// PURPOSE: Static category taxonomy grounded in the live catalog

package taxonomy

// Categories lists every catalog category.
var Categories = []string{
	"Accessories", "Air Track Mat", "Aquarium", "Bar Stool", "Basketball",
	"Bathroom Furniture", "Bed", "Bench", "Bikes", "Bird Cages & Stands",
	"Body Protector", "Bookcase", "Boxing & Muay Thai", "CCTV Camera",
	"Cat Supplies", "Chairs", "Desks", "Desks Frame", "Dining Room Furniture",
	"Dog Supplies", "Dumbbells", "Electric Scooters", "Exercise Bikes",
	"Filing Cabinets", "Fitness", "Fitness Accessories", "Flooring & Mats",
	"Focus Pads", "Functional Fitness", "Gloves", "Gym Bench", "Home & Garden",
	"Home Furniture", "Kettlebells", "Kids Furniture", "Lectern",
	"Living Room Furniture", "Lounge", "MMA", "Martial Arts", "Mattresses",
	"Mirror", "Monitor Arm", "Office Cupboards", "Office Shelving",
	"Other Pet Supplies", "Ottoman", "Outdoor Furniture", "Pedestals",
	"Pet Care Coops & Hutches", "Pet Care Farm Supplies", "Pet Carrier",
	"Pet Feeder", "Pet Fountain", "Pets", "Rabbit Cage", "Reception Counters",
	"Recliners", "Rowing Machine", "Screens", "Shelves", "Sofa", "Speakers",
	"Storage", "Table & Chair Set", "Tables", "Thai Pads", "Training Chairs",
	"Trampoline", "Treadmills", "Vertical Garden", "Weightlifting",
	"Whiteboards", "Workstation", "Yoga Mat", "lockers",
}

// group pairs a top-level group with the catalog categories under it.
// Declaration order is the tie-break order everywhere.
type group struct {
	Name       string
	Categories []string
	Keywords   []string
}

var groups = []group{
	{
		Name: "pet",
		Categories: []string{
			"Dog Supplies", "Cat Supplies", "Pets", "Pet Carrier", "Pet Feeder",
			"Pet Fountain", "Pet Care Coops & Hutches", "Pet Care Farm Supplies",
			"Other Pet Supplies", "Bird Cages & Stands", "Aquarium", "Rabbit Cage",
		},
		Keywords: []string{
			"pet", "puppy", "dog", "cat", "kitten", "canine", "feline", "furry",
			"pooch", "pup", "doggy", "kitty", "bird", "fish", "aquarium", "rabbit",
			"bunny", "hamster", "guinea pig", "parrot", "new pet", "pet owner",
			"pet parent", "fur baby", "adopted",
		},
	},
	{
		Name: "fitness",
		Categories: []string{
			"Fitness", "Fitness Accessories", "Functional Fitness", "Weightlifting",
			"Dumbbells", "Kettlebells", "Gym Bench", "Exercise Bikes", "Treadmills",
			"Rowing Machine", "Boxing & Muay Thai", "MMA", "Martial Arts", "Gloves",
			"Focus Pads", "Thai Pads", "Body Protector", "Air Track Mat",
			"Flooring & Mats", "Yoga Mat", "Trampoline", "Basketball",
		},
		Keywords: []string{
			"gym", "workout", "exercise", "fitness", "training", "muscle",
			"strength", "cardio", "weight", "lifting", "boxing", "mma",
			"martial arts", "kickboxing", "muay thai", "jiu jitsu", "karate",
			"yoga", "pilates", "crossfit", "home gym", "garage gym", "get fit",
			"lose weight", "build muscle", "athletic", "sport",
		},
	},
	{
		Name: "office",
		Categories: []string{
			"Desks", "Desks Frame", "Chairs", "Filing Cabinets", "Office Cupboards",
			"Office Shelving", "Workstation", "Monitor Arm", "Pedestals",
			"Reception Counters", "Lectern", "Training Chairs", "Whiteboards",
			"Screens", "lockers",
		},
		Keywords: []string{
			"office", "work", "desk", "computer", "laptop", "working from home",
			"wfh", "remote work", "home office", "study", "workstation",
			"ergonomic", "productivity", "meeting", "conference", "reception",
			"business", "professional", "back pain", "posture", "sit stand",
			"standing desk", "typing", "monitor",
		},
	},
	{
		Name: "furniture",
		Categories: []string{
			"Bed", "Mattresses", "Sofa", "Lounge", "Recliners", "Ottoman",
			"Living Room Furniture", "Dining Room Furniture", "Bathroom Furniture",
			"Home Furniture", "Kids Furniture", "Bookcase", "Shelves", "Storage",
			"Tables", "Table & Chair Set", "Bar Stool", "Bench",
		},
		Keywords: []string{
			"furniture", "room", "bedroom", "living room", "dining", "bathroom",
			"home", "house", "apartment", "flat", "decor", "interior", "cozy",
			"comfortable", "relax", "sleep", "rest", "lounge", "sitting",
			"storage", "organize", "kid", "child", "children", "baby", "nursery",
		},
	},
	{
		Name: "outdoor",
		Categories: []string{
			"Outdoor Furniture", "Home & Garden", "Vertical Garden", "Bikes",
			"Electric Scooters",
		},
		Keywords: []string{
			"outdoor", "outside", "garden", "patio", "backyard", "balcony",
			"terrace", "deck", "lawn", "plants", "fresh air", "commute",
			"cycling", "scooter",
		},
	},
	{
		Name: "electronics",
		Categories: []string{
			"CCTV Camera", "Speakers", "Mirror",
		},
		Keywords: []string{
			"camera", "security", "tv", "television", "audio", "sound",
			"speaker", "projector", "presentation", "photography", "video",
			"recording",
		},
	},
}

// itemCategory maps a concrete item phrase to its candidate categories,
// most relevant first. Longer phrases are matched before shorter ones.
type itemCategory struct {
	Item       string
	Categories []string
}

var itemCategories = []itemCategory{
	// Pet
	{"scratching post", []string{"Cat Supplies"}},
	{"water fountain", []string{"Pet Fountain"}},
	{"pet carrier", []string{"Pet Carrier"}},
	{"food bowl", []string{"Pet Feeder", "Dog Supplies", "Cat Supplies"}},
	{"water bowl", []string{"Pet Feeder", "Pet Fountain", "Dog Supplies", "Cat Supplies"}},
	{"dog bed", []string{"Dog Supplies"}},
	{"cat bed", []string{"Cat Supplies"}},
	{"pet bed", []string{"Dog Supplies", "Cat Supplies", "Pets"}},
	{"dog toy", []string{"Dog Supplies"}},
	{"cat toy", []string{"Cat Supplies"}},
	{"pet toy", []string{"Dog Supplies", "Cat Supplies"}},
	{"bird cage", []string{"Bird Cages & Stands"}},
	{"bird toy", []string{"Bird Cages & Stands", "Other Pet Supplies"}},
	{"bird stand", []string{"Bird Cages & Stands"}},
	{"collar", []string{"Dog Supplies", "Cat Supplies"}},
	{"leash", []string{"Dog Supplies"}},
	{"harness", []string{"Dog Supplies", "Cat Supplies"}},
	{"crate", []string{"Pet Carrier", "Dog Supplies"}},
	{"cage", []string{"Bird Cages & Stands", "Rabbit Cage"}},
	{"litter", []string{"Cat Supplies"}},
	{"feeder", []string{"Pet Feeder"}},
	{"hutch", []string{"Pet Care Coops & Hutches"}},
	{"coop", []string{"Pet Care Coops & Hutches"}},
	{"aquarium", []string{"Aquarium"}},
	{"fish tank", []string{"Aquarium"}},

	// Fitness
	{"boxing gloves", []string{"Boxing & Muay Thai", "Gloves"}},
	{"punching bag", []string{"Boxing & Muay Thai"}},
	{"punch bag", []string{"Boxing & Muay Thai"}},
	{"exercise bike", []string{"Exercise Bikes"}},
	{"rowing machine", []string{"Rowing Machine"}},
	{"gym flooring", []string{"Flooring & Mats"}},
	{"focus pads", []string{"Focus Pads"}},
	{"thai pads", []string{"Thai Pads"}},
	{"yoga mat", []string{"Yoga Mat", "Flooring & Mats"}},
	{"dumbbell", []string{"Dumbbells", "Weightlifting"}},
	{"barbell", []string{"Weightlifting"}},
	{"kettlebell", []string{"Kettlebells"}},
	{"treadmill", []string{"Treadmills"}},
	{"trampoline", []string{"Trampoline"}},
	{"rower", []string{"Rowing Machine"}},
	{"gloves", []string{"Gloves", "Boxing & Muay Thai"}},
	{"weight", []string{"Weightlifting", "Dumbbells", "Kettlebells"}},
	{"mat", []string{"Flooring & Mats", "Yoga Mat", "Air Track Mat"}},

	// Office
	{"filing cabinet", []string{"Filing Cabinets"}},
	{"monitor stand", []string{"Monitor Arm"}},
	{"monitor arm", []string{"Monitor Arm"}},
	{"office chair", []string{"Chairs"}},
	{"standing desk", []string{"Desks", "Desks Frame"}},
	{"whiteboard", []string{"Whiteboards"}},
	{"cupboard", []string{"Office Cupboards"}},
	{"shelving", []string{"Office Shelving", "Shelves"}},
	{"cabinet", []string{"Filing Cabinets", "Office Cupboards"}},
	{"pedestal", []string{"Pedestals"}},
	{"reception", []string{"Reception Counters"}},
	{"lectern", []string{"Lectern"}},
	{"divider", []string{"Screens"}},
	{"locker", []string{"lockers"}},
	{"screen", []string{"Screens"}},
	{"shelf", []string{"Office Shelving", "Shelves"}},
	{"desk", []string{"Desks", "Workstation"}},
	{"chair", []string{"Chairs", "Training Chairs"}},

	// Furniture
	{"dining table", []string{"Dining Room Furniture", "Tables"}},
	{"coffee table", []string{"Living Room Furniture", "Tables"}},
	{"kids table", []string{"Kids Furniture", "Table & Chair Set"}},
	{"kids chair", []string{"Kids Furniture", "Table & Chair Set"}},
	{"bar stool", []string{"Bar Stool"}},
	{"bookshelf", []string{"Bookcase", "Shelves"}},
	{"bookcase", []string{"Bookcase"}},
	{"mattress", []string{"Mattresses"}},
	{"recliner", []string{"Recliners"}},
	{"ottoman", []string{"Ottoman"}},
	{"couch", []string{"Sofa", "Lounge"}},
	{"sofa", []string{"Sofa", "Lounge"}},
	{"stool", []string{"Bar Stool"}},
	{"table", []string{"Tables", "Dining Room Furniture"}},
	{"bench", []string{"Gym Bench", "Bench"}},
	{"storage", []string{"Storage"}},
	{"bed", []string{"Bed"}},

	// Outdoor / electronics
	{"outdoor furniture", []string{"Outdoor Furniture"}},
	{"electric scooter", []string{"Electric Scooters"}},
	{"security camera", []string{"CCTV Camera"}},
	{"garden", []string{"Home & Garden", "Vertical Garden"}},
	{"patio", []string{"Outdoor Furniture"}},
	{"bicycle", []string{"Bikes"}},
	{"scooter", []string{"Electric Scooters"}},
	{"camera", []string{"CCTV Camera"}},
	{"cctv", []string{"CCTV Camera"}},
	{"speaker", []string{"Speakers"}},
}

// VagueTranslation maps a known indirect phrase to the categories and
// ordered search terms that satisfy it.
type VagueTranslation struct {
	Phrase      string
	Categories  []string
	SearchTerms []string
}

var vaguePhrases = []VagueTranslation{
	// Pain and discomfort
	{"back hurts", []string{"Chairs", "Desks"}, []string{"ergonomic", "lumbar support"}},
	{"back pain", []string{"Chairs", "Desks"}, []string{"ergonomic", "posture"}},
	{"neck pain", []string{"Chairs", "Monitor Arm"}, []string{"ergonomic", "adjustable"}},
	{"uncomfortable sitting", []string{"Chairs"}, []string{"ergonomic", "comfortable"}},
	{"sitting all day", []string{"Chairs", "Desks"}, []string{"ergonomic", "sit stand"}},

	// New pets
	{"just got a puppy", []string{"Dog Supplies", "Pet Feeder", "Pet Carrier"}, []string{"puppy", "dog"}},
	{"just got a dog", []string{"Dog Supplies", "Pet Feeder", "Pet Carrier"}, []string{"dog"}},
	{"just got a kitten", []string{"Cat Supplies", "Pet Feeder", "Pet Fountain"}, []string{"kitten", "cat"}},
	{"new puppy", []string{"Dog Supplies", "Pet Feeder", "Pet Carrier"}, []string{"puppy", "dog"}},
	{"new dog", []string{"Dog Supplies", "Pet Feeder", "Pet Carrier"}, []string{"dog"}},
	{"new kitten", []string{"Cat Supplies", "Pet Feeder", "Pet Fountain"}, []string{"kitten", "cat"}},
	{"new cat", []string{"Cat Supplies", "Pet Feeder", "Pet Fountain"}, []string{"cat"}},
	{"got a puppy", []string{"Dog Supplies", "Pet Feeder", "Pet Carrier"}, []string{"puppy", "dog"}},
	{"got a dog", []string{"Dog Supplies", "Pet Feeder", "Pet Carrier"}, []string{"dog"}},
	{"got a kitten", []string{"Cat Supplies", "Pet Feeder", "Pet Fountain"}, []string{"kitten", "cat"}},
	{"got a cat", []string{"Cat Supplies", "Pet Feeder"}, []string{"cat"}},
	{"have a puppy", []string{"Dog Supplies", "Pet Feeder", "Pet Carrier"}, []string{"puppy"}},
	{"have a dog", []string{"Dog Supplies", "Pet Feeder"}, []string{"dog"}},
	{"have a kitten", []string{"Cat Supplies", "Pet Feeder", "Pet Fountain"}, []string{"kitten"}},
	{"have a cat", []string{"Cat Supplies", "Pet Feeder"}, []string{"cat"}},
	{"adopted a pet", []string{"Dog Supplies", "Cat Supplies", "Pet Feeder"}, []string{"pet"}},

	// Goals
	{"lose weight", []string{"Treadmills", "Exercise Bikes", "Fitness"}, []string{"cardio"}},
	{"get fit", []string{"Fitness", "Dumbbells", "Exercise Bikes"}, []string{"fitness"}},
	{"build muscle", []string{"Weightlifting", "Dumbbells", "Gym Bench"}, []string{"weight", "strength"}},
	{"home gym", []string{"Fitness", "Dumbbells", "Gym Bench", "Flooring & Mats"}, []string{"gym"}},
	{"starting boxing", []string{"Boxing & Muay Thai", "Gloves", "Focus Pads"}, []string{"boxing"}},
	{"start boxing", []string{"Boxing & Muay Thai", "Gloves", "Focus Pads"}, []string{"boxing"}},
	{"want to box", []string{"Boxing & Muay Thai", "Gloves", "Focus Pads"}, []string{"boxing"}},
	{"learn martial arts", []string{"Martial Arts", "MMA", "Boxing & Muay Thai"}, []string{"martial arts"}},
	{"mma training", []string{"MMA", "Boxing & Muay Thai", "Martial Arts"}, []string{"mma"}},

	// Work setups
	{"work from home", []string{"Desks", "Chairs", "Monitor Arm"}, []string{"office", "ergonomic"}},
	{"home office", []string{"Desks", "Chairs", "Filing Cabinets"}, []string{"office"}},
	{"remote work", []string{"Desks", "Chairs", "Monitor Arm"}, []string{"office", "desk"}},
	{"study space", []string{"Desks", "Chairs", "Bookcase"}, []string{"desk", "study"}},

	// Rooms
	{"living room", []string{"Sofa", "Living Room Furniture", "Ottoman"}, []string{"living room"}},
	{"kids room", []string{"Kids Furniture", "Bed", "Table & Chair Set"}, []string{"kids"}},
	{"bedroom", []string{"Bed", "Mattresses", "Bookcase"}, []string{"bedroom"}},
}

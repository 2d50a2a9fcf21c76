// Package seed holds the demo dataset used by the in-memory store and
// tests. Records mirror the catalog the public tracking pages show.
package seed

import (
	"time"

	"github.com/turtletrack/turtletrack/internal/model"
)

func ts(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}

// Turtles returns the seed turtle collection. Callers own the slice.
func Turtles() []*model.Turtle {
	return []*model.Turtle{
		{
			ID: "t1", Name: "Marina",
			Species: "Green Sea Turtle", SpeciesScientific: "Chelonia mydas",
			Age: 25, Weight: 180, Length: 105,
			Status: model.TurtleMigrating, HealthStatus: model.HealthExcellent, ThreatLevel: model.ThreatLow,
			LastSeen: ts("2024-01-15T10:30:00Z"), Temperature: 26.5, Speed: 2.3, Depth: 15,
			Image:       "https://images.unsplash.com/photo-1591025207163-942350e47db2?w=800",
			Description: "Marina is a healthy adult female green sea turtle who has been tracked since 2019. She regularly nests on the beaches of Costa Rica.",
			Location:    model.LatLng{Lat: 9.7489, Lng: -83.7534},
			MigrationTrail: []model.LatLng{
				{Lat: 9.7489, Lng: -83.7534}, {Lat: 10.2, Lng: -84.1}, {Lat: 10.8, Lng: -85.2},
				{Lat: 11.5, Lng: -86.0}, {Lat: 12.1, Lng: -86.8},
			},
			TaggedDate: "2019-06-15", TotalDistance: 4523,
		},
		{
			ID: "t2", Name: "Atlas",
			Species: "Loggerhead", SpeciesScientific: "Caretta caretta",
			Age: 32, Weight: 135, Length: 95,
			Status: model.TurtleActive, HealthStatus: model.HealthGood, ThreatLevel: model.ThreatMedium,
			LastSeen: ts("2024-01-15T08:15:00Z"), Temperature: 24.2, Speed: 1.8, Depth: 28,
			Image:       "https://images.unsplash.com/photo-1437622368342-7a3d73a34c8f?w=800",
			Description: "Atlas is a veteran male loggerhead who has been navigating the Atlantic for over three decades. He is known for his extensive migration routes.",
			Location:    model.LatLng{Lat: 25.7617, Lng: -80.1918},
			MigrationTrail: []model.LatLng{
				{Lat: 25.7617, Lng: -80.1918}, {Lat: 26.5, Lng: -79.5}, {Lat: 27.8, Lng: -78.2}, {Lat: 29.2, Lng: -76.8},
			},
			TaggedDate: "2015-08-22", TotalDistance: 12847,
		},
		{
			ID: "t3", Name: "Coral",
			Species: "Hawksbill", SpeciesScientific: "Eretmochelys imbricata",
			Age: 18, Weight: 68, Length: 78,
			Status: model.TurtleNesting, HealthStatus: model.HealthExcellent, ThreatLevel: model.ThreatHigh,
			LastSeen: ts("2024-01-15T06:45:00Z"), Temperature: 28.1, Speed: 0.5, Depth: 3,
			Image:       "https://images.unsplash.com/photo-1518467166778-b88f373ffec7?w=800",
			Description: "Coral is a critically endangered hawksbill turtle currently nesting in the Caribbean. Her beautiful shell pattern makes her easily identifiable.",
			Location:    model.LatLng{Lat: 18.2208, Lng: -66.5901},
			MigrationTrail: []model.LatLng{
				{Lat: 18.2208, Lng: -66.5901}, {Lat: 18.4, Lng: -66.2}, {Lat: 18.6, Lng: -65.8},
			},
			TaggedDate: "2020-03-10", TotalDistance: 2156,
		},
		{
			ID: "t4", Name: "Neptune",
			Species: "Leatherback", SpeciesScientific: "Dermochelys coriacea",
			Age: 45, Weight: 580, Length: 175,
			Status: model.TurtleMigrating, HealthStatus: model.HealthGood, ThreatLevel: model.ThreatMedium,
			LastSeen: ts("2024-01-15T12:00:00Z"), Temperature: 18.5, Speed: 3.2, Depth: 250,
			Image:       "https://images.unsplash.com/photo-1571987937535-3dc2bac4b34e?w=800",
			Description: "Neptune is a magnificent leatherback, the largest of all sea turtle species. He regularly dives to extreme depths in search of jellyfish.",
			Location:    model.LatLng{Lat: 35.6762, Lng: -10.5698},
			MigrationTrail: []model.LatLng{
				{Lat: 35.6762, Lng: -10.5698}, {Lat: 33.2, Lng: -15.4}, {Lat: 30.1, Lng: -20.8},
				{Lat: 25.5, Lng: -28.2}, {Lat: 18.8, Lng: -35.6},
			},
			TaggedDate: "2012-11-05", TotalDistance: 28934,
		},
		{
			ID: "t5", Name: "Sandy",
			Species: "Olive Ridley", SpeciesScientific: "Lepidochelys olivacea",
			Age: 15, Weight: 45, Length: 65,
			Status: model.TurtleResting, HealthStatus: model.HealthFair, ThreatLevel: model.ThreatHigh,
			LastSeen: ts("2024-01-14T22:30:00Z"), Temperature: 27.8, Speed: 0.2, Depth: 5,
			Image:       "https://images.unsplash.com/photo-1559592413-7cec4d0cae2b?w=800",
			Description: "Sandy is recovering from a minor injury caused by fishing nets. She is currently in a protected area being monitored closely.",
			Location:    model.LatLng{Lat: 15.87, Lng: -97.0769},
			MigrationTrail: []model.LatLng{
				{Lat: 15.87, Lng: -97.0769}, {Lat: 16.2, Lng: -96.5},
			},
			TaggedDate: "2021-07-18", TotalDistance: 1823,
		},
		{
			ID: "t6", Name: "Luna",
			Species: "Green Sea Turtle", SpeciesScientific: "Chelonia mydas",
			Age: 12, Weight: 95, Length: 72,
			Status: model.TurtleActive, HealthStatus: model.HealthExcellent, ThreatLevel: model.ThreatLow,
			LastSeen: ts("2024-01-15T09:00:00Z"), Temperature: 25.3, Speed: 2.1, Depth: 12,
			Image:       "https://images.unsplash.com/photo-1591025207163-942350e47db2?w=800",
			Description: "Luna is a young adult green sea turtle with a distinctive star-shaped marking on her shell. She frequents seagrass meadows near the Great Barrier Reef.",
			Location:    model.LatLng{Lat: -16.9186, Lng: 145.7781},
			MigrationTrail: []model.LatLng{
				{Lat: -16.9186, Lng: 145.7781}, {Lat: -17.5, Lng: 146.2}, {Lat: -18.2, Lng: 146.8},
			},
			TaggedDate: "2022-02-14", TotalDistance: 987,
		},
	}
}

// Beaches returns the seed beach collection.
func Beaches() []*model.Beach {
	return []*model.Beach{
		{
			ID: "b1", Name: "Tortuguero Beach", Country: "Costa Rica",
			Location:  model.LatLng{Lat: 10.5432, Lng: -83.5024},
			NestCount: 234, Volunteers: 45, ThreatLevel: model.ThreatLow,
			Threats: []string{"Light pollution", "Beach erosion"},
			RecentActivity: []model.BeachActivity{
				{Date: "2024-01-15", Event: "New nest discovered - Green Sea Turtle"},
				{Date: "2024-01-14", Event: "67 hatchlings emerged and reached the ocean"},
				{Date: "2024-01-13", Event: "Beach patrol completed - no threats detected"},
			},
			Image:       "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=800",
			Description: "One of the most important nesting sites for green sea turtles in the Western Hemisphere.",
		},
		{
			ID: "b2", Name: "Mon Repos Beach", Country: "Australia",
			Location:  model.LatLng{Lat: -24.8059, Lng: 152.4418},
			NestCount: 189, Volunteers: 32, ThreatLevel: model.ThreatMedium,
			Threats: []string{"Climate change", "Predators", "Light pollution"},
			RecentActivity: []model.BeachActivity{
				{Date: "2024-01-15", Event: "Nest protection barriers installed"},
				{Date: "2024-01-14", Event: "2 new loggerhead nests recorded"},
			},
			Image:       "https://images.unsplash.com/photo-1506953823976-52e1fdc0149a?w=800",
			Description: "Australia's most accessible turtle rookery and an important research site.",
		},
		{
			ID: "b3", Name: "Raine Island", Country: "Australia",
			Location:  model.LatLng{Lat: -11.5946, Lng: 144.0356},
			NestCount: 456, Volunteers: 18, ThreatLevel: model.ThreatHigh,
			Threats: []string{"Sea level rise", "Beach flooding", "Nest inundation"},
			RecentActivity: []model.BeachActivity{
				{Date: "2024-01-15", Event: "Emergency nest relocation due to flooding"},
				{Date: "2024-01-14", Event: "Beach restoration project phase 2 completed"},
			},
			Image:       "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800",
			Description: "The largest green turtle nesting site in the world, facing significant climate threats.",
		},
		{
			ID: "b4", Name: "Archie Carr NWR", Country: "United States",
			Location:  model.LatLng{Lat: 27.8589, Lng: -80.4456},
			NestCount: 312, Volunteers: 67, ThreatLevel: model.ThreatMedium,
			Threats: []string{"Coastal development", "Artificial lighting", "Beach nourishment"},
			RecentActivity: []model.BeachActivity{
				{Date: "2024-01-15", Event: "Night patrol recorded 5 nesting attempts"},
				{Date: "2024-01-13", Event: "Light ordinance enforcement completed"},
			},
			Image:       "https://images.unsplash.com/photo-1519046904884-53103b34b206?w=800",
			Description: "The most important nesting beach for loggerhead sea turtles in the Western Hemisphere.",
		},
		{
			ID: "b5", Name: "Playa Escobilla", Country: "Mexico",
			Location:  model.LatLng{Lat: 15.87, Lng: -97.0769},
			NestCount: 892, Volunteers: 23, ThreatLevel: model.ThreatMedium,
			Threats: []string{"Poaching", "Fishing nets", "Plastic pollution"},
			RecentActivity: []model.BeachActivity{
				{Date: "2024-01-15", Event: "Arribada event monitoring in progress"},
				{Date: "2024-01-12", Event: "Beach cleanup removed 500kg of debris"},
			},
			Image:       "https://images.unsplash.com/photo-1505142468610-359e7d316be0?w=800",
			Description: "Famous for spectacular mass nesting events (arribadas) of olive ridley turtles.",
		},
	}
}

// Nests returns the initial nest declarations used when the durable
// local store holds none.
func Nests() []*model.Nest {
	return []*model.Nest{
		{
			ID: "nest-1", BeachID: "b1", BeachName: "Tortuguero Beach",
			TurtleCount: 95, HatchDate: "2024-02-15",
			DeclaredBy: "volunteer-demo", DeclaredAt: ts("2024-01-01T10:00:00Z"),
			Status: model.NestActive, Notes: "Large nest near marker 5",
		},
		{
			ID: "nest-2", BeachID: "b2", BeachName: "Mon Repos Beach",
			TurtleCount: 78, HatchDate: "2024-02-20",
			DeclaredBy: "volunteer-demo", DeclaredAt: ts("2024-01-05T14:30:00Z"),
			Status: model.NestHatched,
		},
	}
}

package model

// DefaultCourses returns the college's degree program catalog.
func DefaultCourses() []Course {
	return []Course{
		{
			ID:          1,
			Title:       "Bachelor of Commerce (B.Com)",
			Category:    "commerce",
			Description: "A comprehensive program focusing on business, accounting, finance, and economics to prepare students for careers in the corporate world.",
			Duration:    "3 Years",
			Seats:       120,
			Image:       "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          2,
			Title:       "Bachelor of Science in Physics (B.Sc)",
			Category:    "science",
			Description: "Study the fundamental laws governing the natural world with a focus on theoretical concepts and practical applications.",
			Duration:    "3 Years",
			Seats:       60,
			Image:       "https://images.unsplash.com/photo-1636466497217-26a8cbeaf0aa?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          3,
			Title:       "Bachelor of Science in Chemistry (B.Sc)",
			Category:    "science",
			Description: "Explore the composition, structure, properties, and change of matter through theoretical and laboratory work.",
			Duration:    "3 Years",
			Seats:       60,
			Image:       "https://images.unsplash.com/photo-1603126857599-f6e157fa2fe6?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          4,
			Title:       "Bachelor of Arts in English (B.A)",
			Category:    "arts",
			Description: "Develop critical thinking, analytical skills, and creative expression through the study of literature and language.",
			Duration:    "3 Years",
			Seats:       80,
			Image:       "https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          5,
			Title:       "Bachelor of Arts in Economics (B.A)",
			Category:    "arts",
			Description: "Study economic theories, policies, and their applications to better understand societal resource allocation.",
			Duration:    "3 Years",
			Seats:       80,
			Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          6,
			Title:       "Bachelor of Computer Applications (BCA)",
			Category:    "computer",
			Description: "Gain comprehensive knowledge of computer applications and software development to excel in the IT industry.",
			Duration:    "3 Years",
			Seats:       60,
			Image:       "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
	}
}

// DefaultEvents returns the upcoming campus events board.
func DefaultEvents() []Event {
	return []Event{
		{
			ID:          1,
			Title:       "Cultural Festival",
			Date:        "May 15-17, 2023",
			Time:        "10:00 AM - 6:00 PM",
			Location:    "College Main Auditorium",
			Description: "Annual cultural festival featuring music, dance, and various competitions.",
			Image:       "https://i.pravatar.cc/300?img=1",
			Attendees:   150,
		},
		{
			ID:          2,
			Title:       "Industry Expert Talk",
			Date:        "May 20, 2023",
			Time:        "11:00 AM - 1:00 PM",
			Location:    "Seminar Hall",
			Description: "Guest lecture by industry experts on recent technological advancements.",
			Image:       "https://i.pravatar.cc/300?img=2",
			Attendees:   75,
		},
		{
			ID:          3,
			Title:       "Tech Symposium",
			Date:        "May 25, 2023",
			Time:        "9:00 AM - 5:00 PM",
			Location:    "Computer Science Block",
			Description: "Technical symposium featuring workshops, hackathons, and coding competitions.",
			Image:       "https://i.pravatar.cc/300?img=3",
			Attendees:   120,
		},
		{
			ID:          4,
			Title:       "Alumni Meet",
			Date:        "June 5, 2023",
			Time:        "3:00 PM - 7:00 PM",
			Location:    "College Main Ground",
			Description: "Annual alumni gathering to connect current students with graduates.",
			Image:       "https://i.pravatar.cc/300?img=4",
			Attendees:   100,
		},
		{
			ID:          5,
			Title:       "Sports Day",
			Date:        "June 12-13, 2023",
			Time:        "All Day",
			Location:    "College Sports Complex",
			Description: "Annual sports competition featuring various indoor and outdoor games.",
			Image:       "https://i.pravatar.cc/300?img=5",
			Attendees:   200,
		},
	}
}

package model

// DefaultItems is the built in campus gallery shown before anyone has
// uploaded anything. IDs stay well below any wall-clock based ID, so seeded
// and uploaded items never collide.
func DefaultItems() []GalleryItem {
	return []GalleryItem{
		{
			ID:       1,
			Type:     TypeImage,
			Title:    "Annual Day Celebration",
			Date:     "March 15, 2023",
			Src:      "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Category: CategoryEvents,
		},
		{
			ID:       2,
			Type:     TypeImage,
			Title:    "Science Exhibition",
			Date:     "February 20, 2023",
			Src:      "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Category: CategoryAcademic,
		},
		{
			ID:       3,
			Type:     TypeImage,
			Title:    "Sports Meet 2023",
			Date:     "January 5, 2023",
			Src:      "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Category: CategorySports,
		},
		{
			ID:        4,
			Type:      TypeVideo,
			Title:     "Cultural Performance",
			Date:      "December 12, 2022",
			Src:       "https://example.com/video1.mp4",
			Thumbnail: "https://images.unsplash.com/photo-1605810230434-7631ac76ec81?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Category:  CategoryCultural,
		},
		{
			ID:       5,
			Type:     TypeImage,
			Title:    "Campus Life",
			Date:     "November 30, 2022",
			Src:      "https://images.unsplash.com/photo-1519389950473-47ba0277781c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Category: CategoryCampus,
		},
		{
			ID:       6,
			Type:     TypeImage,
			Title:    "Guest Lecture Series",
			Date:     "October 18, 2022",
			Src:      "https://images.unsplash.com/photo-1498050108023-c5249f4df085?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Category: CategoryAcademic,
		},
		{
			ID:        7,
			Type:      TypeVideo,
			Title:     "Alumni Meet 2022",
			Date:      "September 25, 2022",
			Src:       "https://example.com/video2.mp4",
			Thumbnail: "https://images.unsplash.com/photo-1483058712412-4245e9b90334?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Category:  CategoryEvents,
		},
		{
			ID:       8,
			Type:     TypeImage,
			Title:    "College Infrastructure",
			Date:     "August 10, 2022",
			Src:      "https://images.unsplash.com/photo-1473177104440-ffee2f376098?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Category: CategoryCampus,
		},
	}
}

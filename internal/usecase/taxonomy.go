package usecase

import (
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

// DefaultIndustries is the fixed industry/niche taxonomy used to seed the
// stores and served when the industries collection is still empty.
func DefaultIndustries() []entity.Industry {
	return []entity.Industry{
		industry("Food & Beverage", "Bakeries", "Restaurants", "Cafes & Coffee Shops", "Catering", "Food Trucks"),
		industry("Retail", "Clothing & Apparel", "Home Goods", "Electronics", "Gifts & Specialty", "Online Stores"),
		industry("Health & Wellness", "Gyms & Fitness Studios", "Yoga & Pilates", "Nutrition Coaching", "Spas & Massage", "Mental Health"),
		industry("Beauty & Personal Care", "Hair Salons", "Nail Salons", "Barbershops", "Skincare", "Makeup Artists"),
		industry("Professional Services", "Accounting", "Legal", "Consulting", "Marketing Agencies", "Real Estate"),
		industry("Home Services", "Cleaning", "Landscaping", "Plumbing", "Electrical", "Renovation"),
		industry("Technology", "Software Development", "IT Support", "Web Design", "Mobile Apps", "Cybersecurity"),
		industry("Education", "Tutoring", "Online Courses", "Music Lessons", "Language Schools", "Test Prep"),
		industry("Arts & Entertainment", "Photography", "Event Planning", "Music & Bands", "Galleries", "Crafts"),
		industry("Travel & Hospitality", "Hotels & B&Bs", "Tour Operators", "Travel Agencies", "Vacation Rentals", "Transportation"),
	}
}

func industry(name string, nicheNames ...string) entity.Industry {
	niches := make([]entity.Niche, 0, len(nicheNames))
	for _, n := range nicheNames {
		niches = append(niches, entity.Niche{Name: n})
	}
	return entity.Industry{Name: name, Niches: niches}
}

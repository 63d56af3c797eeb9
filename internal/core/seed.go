// ABOUTME: Demo catalog used by the seed operation
// ABOUTME: Ten fashion products spanning distinct style vibes
package core

import "github.com/stylistiq/vibematch/internal/models"

// SeedProducts returns the demo fashion catalog. Seeding again adds
// duplicates; there is no dedup key.
func SeedProducts() []models.ProductDraft {
	return []models.ProductDraft{
		{
			Name:        "Boho Maxi Dress",
			Description: "Flowy, earthy-toned maxi dress with vibrant floral patterns. Perfect for festival vibes and summer adventures.",
			VibeTags:    []string{"boho", "festival", "earthy", "flowy", "nature-inspired"},
			Category:    "dresses",
			ImageURL:    "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=400",
		},
		{
			Name:        "Cozy Knit Sweater",
			Description: "Oversized chunky knit sweater in warm cream. Soft and comfortable for lounging or casual outings.",
			VibeTags:    []string{"cozy", "comfort", "casual", "warm", "relaxed"},
			Category:    "tops",
			ImageURL:    "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=400",
		},
		{
			Name:        "Urban Leather Jacket",
			Description: "Sleek black leather jacket with edgy details. Perfect for energetic urban chic style and night outs.",
			VibeTags:    []string{"urban", "edgy", "energetic", "chic", "bold"},
			Category:    "outerwear",
			ImageURL:    "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400",
		},
		{
			Name:        "Minimalist Linen Pants",
			Description: "Clean-cut linen pants in neutral beige. Breathable and elegant for a minimal aesthetic.",
			VibeTags:    []string{"minimalist", "clean", "elegant", "neutral", "breathable"},
			Category:    "bottoms",
			ImageURL:    "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=400",
		},
		{
			Name:        "Vintage Denim Jacket",
			Description: "Distressed light-wash denim jacket with retro patches. Gives off nostalgic, carefree vibes.",
			VibeTags:    []string{"vintage", "retro", "nostalgic", "casual", "carefree"},
			Category:    "outerwear",
			ImageURL:    "https://images.unsplash.com/photo-1576871337632-b9aef4c17ab9?w=400",
		},
		{
			Name:        "Athleisure Track Set",
			Description: "Matching sporty track jacket and pants in sleek black. Comfortable yet stylish for active lifestyles.",
			VibeTags:    []string{"sporty", "active", "modern", "comfortable", "athleisure"},
			Category:    "sets",
			ImageURL:    "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=400",
		},
		{
			Name:        "Romantic Silk Blouse",
			Description: "Delicate silk blouse in soft blush pink with ruffled details. Feminine and elegant for special occasions.",
			VibeTags:    []string{"romantic", "feminine", "elegant", "delicate", "dressy"},
			Category:    "tops",
			ImageURL:    "https://images.unsplash.com/photo-1618932260643-eee4a2f652a6?w=400",
		},
		{
			Name:        "Grunge Plaid Shirt",
			Description: "Oversized flannel shirt in dark red and black plaid. Edgy alternative style for rebellious spirits.",
			VibeTags:    []string{"grunge", "alternative", "edgy", "rebellious", "oversized"},
			Category:    "tops",
			ImageURL:    "https://images.unsplash.com/photo-1602293589930-45aad59ba3ab?w=400",
		},
		{
			Name:        "Tropical Print Shorts",
			Description: "Bright tropical print shorts with palm leaves and exotic flowers. Fun beach and vacation vibes.",
			VibeTags:    []string{"tropical", "fun", "beach", "vacation", "colorful"},
			Category:    "bottoms",
			ImageURL:    "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?w=400",
		},
		{
			Name:        "Sophisticated Blazer",
			Description: "Tailored navy blazer with clean lines. Professional and polished for corporate or formal settings.",
			VibeTags:    []string{"sophisticated", "professional", "polished", "corporate", "tailored"},
			Category:    "outerwear",
			ImageURL:    "https://images.unsplash.com/photo-1507680434567-5739c80be1ac?w=400",
		},
	}
}

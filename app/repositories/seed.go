package repositories

import (
	"fmt"

	"scribbles/app/models"
)

type seedPost struct {
	category int
	fields   models.PostFields
}

type seedComment struct {
	post   int
	author string
	body   string
}

var seedCategories = []models.CategoryFields{
	{
		Name:        "Nature & Landscapes",
		Slug:        "nature-landscapes",
		Description: "Breathtaking Ghibli-inspired natural scenery and landscapes",
	},
	{
		Name:        "Characters",
		Slug:        "characters",
		Description: "Exploring the magical characters that inhabit the Ghibli universe",
	},
	{
		Name:        "Behind the Scenes",
		Slug:        "behind-scenes",
		Description: "The creative process and stories behind Studio Ghibli works",
	},
	{
		Name:        "Fan Art",
		Slug:        "fan-art",
		Description: "Creative interpretations and artwork inspired by Ghibli films",
	},
}

var seedPosts = []seedPost{
	{
		category: 0,
		fields: models.PostFields{
			Title:    "The Enchanted Forest",
			Slug:     "enchanted-forest",
			Excerpt:  "Exploring the magical forests that inspired Hayao Miyazaki's vision for My Neighbor Totoro.",
			ImageURL: "https://images.unsplash.com/photo-1513836279014-a89f7a76ae86",
			Featured: true,
			Content: `# The Enchanted Forest

The mystical forests of Miyazaki's films are more than just backgrounds. They are characters with souls and stories.

## Finding Totoro

The dense, lush forests of "My Neighbor Totoro" represent more than just a setting. They embody the magical bridge between childhood innocence and the spiritual world. Miyazaki was inspired by the Sayama Forest, also known as Totoro's Forest, located in Saitama Prefecture, Japan.

The towering camphor tree where Totoro sleeps is based on a 1,000-year-old camphor tree at the Kamou Shrine. When you stand beneath its massive canopy, you can almost feel the presence of forest spirits.

## The Visual Language of Forest Magic

Miyazaki's forests are characterized by:

- **Dappled Light**: Sunbeams filtering through leaves, creating patterns of light and shadow
- **Ancient Trees**: Wise, gnarly giants that have witnessed centuries
- **Animated Foliage**: Leaves that dance and whisper in the wind
- **Hidden Passages**: Pathways that reveal themselves only to the pure of heart

## Preserving Real Magic

The Totoro Forest Conservation Fund was established to preserve the forests that inspired Miyazaki. The next time you walk through a forest, pay attention. The rustling leaves, the patterns of light, the ancient trees are all speaking, if only we would listen.
`,
		},
	},
	{
		category: 1,
		fields: models.PostFields{
			Title:    "The Spirit of Kodama",
			Slug:     "spirit-of-kodama",
			Excerpt:  "Delving into the mythology of the forest spirits in Princess Mononoke and their real-world inspiration.",
			ImageURL: "https://images.unsplash.com/photo-1509316975850-ff9c5deb0cd9",
			Content: `# The Spirit of Kodama

The mysterious Kodama from "Princess Mononoke" have captivated audiences with their eerie, rattling heads and enigmatic presence.

## Ancient Forest Guardians

In Japanese folklore, Kodama are spirits that inhabit trees, similar to the dryads of Greek mythology. Their name translates to "tree spirit" or "echo," as they were believed to create echoes in the mountains and forests.

Traditionally, cutting down a tree inhabited by a Kodama was considered bad luck. This folk belief protected ancient trees and preserved forests.

## Miyazaki's Interpretation

Miyazaki reimagined these spirits as small, childlike figures with bobbing heads that emit an otherworldly rattling sound. Where Kodama appear, the forest is thriving. Their disappearance symbolizes the forest's decline.

## Beyond the Screen

Small Kodama statues can be found in Japanese forests, placed by environmental activists and Ghibli fans alike. The spirits are always watching.
`,
		},
	},
	{
		category: 2,
		fields: models.PostFields{
			Title:    "The Art of Hand-Drawn Rain",
			Slug:     "art-of-hand-drawn-rain",
			Excerpt:  "How Studio Ghibli animators create the most mesmerizing rainfall in animated film.",
			ImageURL: "https://images.unsplash.com/photo-1615729947596-a598e5de0ab3",
			Featured: true,
			Content: `# The Art of Hand-Drawn Rain

There's something uniquely soothing about the rain in Studio Ghibli films. It feels more real, more tangible than rain in other animated works.

## Technical Approach

Studio Ghibli animators use several techniques to create their distinctive rainfall:

1. **Layering**: Multiple transparent sheets of rain are layered to create depth
2. **Variable Opacity**: Raindrops closer to the viewer are drawn thicker and more opaque
3. **Dynamic Timing**: The timing of drops is slightly irregular, mimicking real rainfall
4. **Sound Design**: Rainfall is synchronized with meticulously recorded audio

## Emotional Weather

In Ghibli films, rain is never just a weather condition. The famous rainy bus stop scene in "My Neighbor Totoro" turns what could be a dreary moment into something magical.

## The Disappearing Art

As animation moves toward computer-generated techniques, hand-drawn rain represents a fading art form. Each raindrop drawn by hand carries the human touch that makes these films feel so alive.
`,
		},
	},
	{
		category: 3,
		fields: models.PostFields{
			Title:    "My Tribute to No-Face",
			Slug:     "tribute-to-no-face",
			Excerpt:  "A personal art project reimagining the enigmatic No-Face character in a forest setting.",
			ImageURL: "https://images.unsplash.com/photo-1518495973542-4542c06a5843",
			Content: `# My Tribute to No-Face

No-Face from "Spirited Away" is one of Studio Ghibli's most complex characters, a spirit that both frightens and fascinates. This is my exploration of what No-Face might look like in a forest.

## Artistic Process

1. **Research**: Studying the original character design and how No-Face moves
2. **Sketching**: Dozens of preliminary drawings to capture the right posture
3. **Watercolor Base**: Transparent layers to create depth in the forest scene
4. **Ink Details**: Defining No-Face with the precision of Ghibli animation
5. **Digital Enhancement**: Subtle lighting to capture the magical atmosphere

## Symbolism in the Piece

- **Gold Leaves**: The gold that once tempted No-Face, transformed into something natural
- **Mask Half-Buried**: A shedding of identity and finding a new self
- **Kodama Present**: The forest accepts this spirit as one of its own
`,
		},
	},
}

// Comments go to the two featured posts.
var seedComments = []seedComment{
	{
		post:   0,
		author: "TotoroLover",
		body:   "This article brings back so many childhood memories! The way you described the forest makes me want to rewatch My Neighbor Totoro right now.",
	},
	{
		post:   0,
		author: "ForestSpirit",
		body:   "I visited the Sayama Forest last year and it truly is magical. You can feel why Miyazaki was inspired by it.",
	},
	{
		post:   2,
		author: "AnimationStudent",
		body:   "As someone studying animation, I'm in awe of how Ghibli creates rain. Digital tools can't replicate that organic feeling!",
	},
	{
		post:   2,
		author: "RainyBusStop",
		body:   "The bus stop scene is the reason I love rainy evenings. Thank you for explaining how much work goes into every drop.",
	},
}

// Seed populates the store with demo categories, posts and comments. It does
// nothing when both categories and posts already exist and reports whether
// any data was written.
func (r *Repository) Seed() (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	categories, err := r.categories()
	if err != nil {
		return false, fmt.Errorf("seed check categories: %w", err)
	}
	posts, err := r.posts()
	if err != nil {
		return false, fmt.Errorf("seed check posts: %w", err)
	}
	if len(categories) > 0 && len(posts) > 0 {
		return false, nil
	}

	createdCategories := make([]models.Category, 0, len(seedCategories))
	for _, fields := range seedCategories {
		category, err := r.createCategory(fields)
		if err != nil {
			return false, fmt.Errorf("seed category %q: %w", fields.Slug, err)
		}
		createdCategories = append(createdCategories, category)
	}

	createdPosts := make([]models.Post, 0, len(seedPosts))
	for _, sp := range seedPosts {
		fields := sp.fields
		fields.CategoryID = createdCategories[sp.category].ID
		post, err := r.createPost(fields)
		if err != nil {
			return false, fmt.Errorf("seed post %q: %w", fields.Slug, err)
		}
		createdPosts = append(createdPosts, post)
	}

	for _, sc := range seedComments {
		_, err := r.createComment(models.CommentFields{
			PostID:  createdPosts[sc.post].ID,
			Author:  sc.author,
			Content: sc.body,
		})
		if err != nil {
			return false, fmt.Errorf("seed comment by %s: %w", sc.author, err)
		}
	}

	return true, nil
}

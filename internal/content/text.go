package content

var (
	AboutMe = `I excel in academics while actively exploring **tech**, **filmmaking**, and creative pursuits.
With a strong problem-solving mindset, I blend logic and creativity to craft impactful experiences.

Whether in code, storytelling, or editing, I strive for perfection in every detail.`

	HeroIntro = `I create beautiful digital experiences through code and tell compelling stories through film.`

	Motto = `A coder by precision, a filmmaker by passion, an editor by obsession`
)

var profile = Profile{
	Name:        "Meet Mangaonkar",
	Tagline:     "Coder & Filmmaker",
	Intro:       HeroIntro,
	Motto:       Motto,
	Photo:       "/images/profile-pic.png",
	Resume:      "/static/resume.pdf",
	Email:       "meet.mangaonkar@example.com",
	Phone:       "+91 98765 43210",
	PhoneLink:   "+919876543210",
	AboutSource: AboutMe,
	Socials: []SocialLink{
		{Label: "LinkedIn", Icon: "linkedin", URL: "#"},
		{Label: "GitHub", Icon: "github", URL: "#"},
		{Label: "Instagram", Icon: "instagram", URL: "#"},
		{Label: "WhatsApp", Icon: "message-square", URL: "https://wa.me/919876543210"},
	},
}

var projects = []Project{
	{
		Slug:        "portfolio-website",
		Title:       "Personal Portfolio Website",
		Description: "An elegant portfolio website with smooth animations and responsive design.",
		Tags:        []string{"Go", "Gin", "HTMX"},
		Image:       "/images/placeholder.svg",
		Type:        ProjectCode,
		Links:       Links{Demo: "#", GitHub: "#"},
	},
	{
		Slug:        "e-commerce-platform",
		Title:       "E-Commerce Platform",
		Description: "A full-featured e-commerce solution with product filtering, cart functionality, and payment processing.",
		Tags:        []string{"React", "Node.js", "MongoDB"},
		Image:       "/images/placeholder.svg",
		Type:        ProjectCode,
		Links:       Links{Demo: "#", GitHub: "#"},
	},
	{
		Slug:        "urban-stories",
		Title:       "Urban Stories",
		Description: "A short documentary exploring city life and the hidden stories of urban landscapes.",
		Tags:        []string{"Documentary", "4K", "Urban"},
		Image:       "/images/placeholder.svg",
		Type:        ProjectFilm,
		Links:       Links{Watch: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		Video:       "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	},
	{
		Slug:        "weather-dashboard",
		Title:       "Weather Dashboard",
		Description: "Real-time weather application with forecast visualization and location-based features.",
		Tags:        []string{"JavaScript", "API", "Chart.js"},
		Image:       "/images/placeholder.svg",
		Type:        ProjectCode,
		Links:       Links{Demo: "#"},
	},
}

var achievements = []Achievement{
	{
		Slug:        "national-coding-competition",
		Title:       "First Place - National Coding Competition",
		Description: "Won first place at the National Code Challenge for developing an innovative solution for urban mobility.",
		Year:        "2023",
		Icon:        "trophy",
		Detail:      "Built a routing engine that combined live transit feeds with ride-share availability, judged on accuracy and latency.",
		Certificate: "/images/certificates/national-code-challenge.svg",
	},
	{
		Slug:        "best-short-film",
		Title:       "Best Short Film Award",
		Description: "Received recognition for directing and producing a compelling short documentary on environmental conservation.",
		Year:        "2022",
		Icon:        "award",
		Detail:      "Directed a twelve minute documentary shot over three months along the Konkan coast.",
	},
	{
		Slug:        "technical-innovation",
		Title:       "Outstanding Technical Innovation",
		Description: "Awarded for creating a novel algorithm that improved processing efficiency by 40% in legacy systems.",
		Year:        "2021",
		Icon:        "medal",
		Certificate: "/images/certificates/technical-innovation.svg",
	},
	{
		Slug:        "hackathon-champion",
		Title:       "Hackathon Champion",
		Description: "Led a team to victory in a 48-hour hackathon focused on solving healthcare accessibility challenges.",
		Year:        "2020",
		Icon:        "trophy",
	},
}

var certificates = []Certificate{
	{
		ID:          "cert-1",
		Title:       "Advanced Web Development",
		Issuer:      "Tech Academy",
		Date:        "June 2023",
		Description: "Completed intensive training in modern web development frameworks and techniques.",
		Image:       "/images/placeholder.svg",
		Category:    CertTechnical,
	},
	{
		ID:          "cert-2",
		Title:       "Film Direction Masterclass",
		Issuer:      "Film Institute",
		Date:        "March 2022",
		Description: "Intensive course covering advanced film direction and storytelling techniques.",
		Image:       "/images/placeholder.svg",
		Category:    CertCreative,
	},
	{
		ID:          "cert-3",
		Title:       "Machine Learning Certification",
		Issuer:      "AI Academy",
		Date:        "November 2022",
		Description: "Comprehensive training in machine learning algorithms and practical applications.",
		Image:       "/images/placeholder.svg",
		Category:    CertTechnical,
	},
	{
		ID:          "cert-4",
		Title:       "Digital Photography Excellence",
		Issuer:      "Visual Arts School",
		Date:        "August 2021",
		Description: "Mastery of digital photography techniques and visual storytelling.",
		Image:       "/images/placeholder.svg",
		Category:    CertCreative,
	},
	{
		ID:          "cert-5",
		Title:       "Cloud Computing Architecture",
		Issuer:      "Cloud Professionals",
		Date:        "January 2023",
		Description: "Advanced cloud architecture design and implementation strategies.",
		Image:       "/images/placeholder.svg",
		Category:    CertTechnical,
	},
	{
		ID:          "cert-6",
		Title:       "Project Management Professional",
		Issuer:      "Management Institute",
		Date:        "May 2022",
		Description: "Professional certification in project management methodologies and best practices.",
		Image:       "/images/placeholder.svg",
		Category:    CertAcademic,
	},
}

var galleryImages = []GalleryImage{
	{ID: "img-1", Src: "/images/placeholder.svg", Alt: "Gallery Image 1", Category: GalleryCoding},
	{ID: "img-2", Src: "/images/placeholder.svg", Alt: "Gallery Image 2", Category: GalleryFilmmaking},
	{ID: "img-3", Src: "/images/placeholder.svg", Alt: "Gallery Image 3", Category: GalleryEvents},
	{ID: "img-4", Src: "/images/placeholder.svg", Alt: "Gallery Image 4", Category: GalleryCoding},
	{ID: "img-5", Src: "/images/placeholder.svg", Alt: "Gallery Image 5", Category: GalleryFilmmaking},
	{ID: "img-6", Src: "/images/placeholder.svg", Alt: "Gallery Image 6", Category: GalleryEvents},
	{ID: "img-7", Src: "/images/placeholder.svg", Alt: "Gallery Image 7", Category: GalleryCoding},
	{ID: "img-8", Src: "/images/placeholder.svg", Alt: "Gallery Image 8", Category: GalleryFilmmaking},
}

// Package content holds the site's pre-authored bilingual content:
// service pages, blog posts, district landing pages, testimonials and
// the embedded UI string catalog. Records are authored with both
// locale variants; the resolver's fallback is a safety net, not a
// rendering mode.
package content

import (
	"time"

	"go-pestcontrol-web/internal/domain"
)

// Catalog is the read-only content store shared by all renders.
type Catalog struct {
	services     []domain.ServiceContent
	posts        []domain.BlogContent
	districts    []domain.DistrictContent
	testimonials []domain.Testimonial
	heroImages   []string
}

// NewCatalog builds the catalog once at startup.
func NewCatalog() *Catalog {
	return &Catalog{
		services:     services,
		posts:        posts,
		districts:    districts,
		testimonials: testimonials,
		heroImages: []string{
			"/static/images/hero-technician.webp",
			"/static/images/hero-kitchen.webp",
			"/static/images/hero-garden.webp",
			"/static/images/hero-warehouse.webp",
		},
	}
}

func (c *Catalog) Services() []domain.ServiceContent { return c.services }

func (c *Catalog) ServiceBySlug(slug string) (domain.ServiceContent, bool) {
	for _, s := range c.services {
		if s.Slug == slug {
			return s, true
		}
	}
	return domain.ServiceContent{}, false
}

func (c *Catalog) Posts() []domain.BlogContent { return c.posts }

func (c *Catalog) PostBySlug(slug string) (domain.BlogContent, bool) {
	for _, p := range c.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return domain.BlogContent{}, false
}

func (c *Catalog) Districts() []domain.DistrictContent { return c.districts }

func (c *Catalog) DistrictBySlug(slug string) (domain.DistrictContent, bool) {
	for _, d := range c.districts {
		if d.Slug == slug {
			return d, true
		}
	}
	return domain.DistrictContent{}, false
}

func (c *Catalog) Testimonials() []domain.Testimonial { return c.testimonials }

func (c *Catalog) HeroImages() []string { return c.heroImages }

var services = []domain.ServiceContent{
	{
		Slug:        "cockroaches",
		Name:        domain.Bilingual{Ar: "مكافحة الصراصير", En: "Cockroach Control"},
		Tagline:     domain.Bilingual{Ar: "إبادة فورية مع ضمان يصل إلى سنة", En: "Immediate extermination with up to a year of warranty"},
		Description: domain.Bilingual{Ar: "نستخدم مبيدات جل ألمانية آمنة على الأطفال والحيوانات الأليفة، مع معالجة مصادر التكاثر في المطابخ ودورات المياه وفتحات الصرف.", En: "We use German gel pesticides that are safe around children and pets, treating breeding sources in kitchens, bathrooms and drains."},
		Image:       "/static/images/service-cockroaches.webp",
		Features: []domain.Bilingual{
			{Ar: "معاينة مجانية وتقرير مفصل", En: "Free inspection and a detailed report"},
			{Ar: "مبيدات بدون رائحة ولا تتطلب مغادرة المنزل", En: "Odourless pesticides, no need to leave your home"},
			{Ar: "زيارة متابعة بعد أسبوعين", En: "Follow-up visit after two weeks"},
		},
		FAQs: []domain.FAQItem{
			{
				Question: domain.Bilingual{Ar: "هل الرش آمن للأطفال؟", En: "Is the treatment safe for children?"},
				Answer:   domain.Bilingual{Ar: "نعم، نستخدم مبيدات جل مرخصة لا تحتاج إلى إخلاء المنزل.", En: "Yes. We use licensed gel pesticides that do not require vacating the house."},
			},
			{
				Question: domain.Bilingual{Ar: "كم تستغرق المعالجة؟", En: "How long does treatment take?"},
				Answer:   domain.Bilingual{Ar: "عادة أقل من ساعتين للشقة المتوسطة.", En: "Usually under two hours for an average apartment."},
			},
		},
	},
	{
		Slug:        "termites",
		Name:        domain.Bilingual{Ar: "مكافحة النمل الأبيض", En: "Termite Control"},
		Tagline:     domain.Bilingual{Ar: "حماية المباني قبل وبعد الإنشاء", En: "Protection before and after construction"},
		Description: domain.Bilingual{Ar: "حقن التربة وتركيب محطات طعوم لحماية الأساسات من النمل الأبيض، مع ضمان مكتوب يصل إلى خمس سنوات.", En: "Soil injection and bait stations protect foundations from termites, backed by a written warranty of up to five years."},
		Image:       "/static/images/service-termites.webp",
		Features: []domain.Bilingual{
			{Ar: "فحص بأجهزة كشف حديثة", En: "Inspection with modern detection equipment"},
			{Ar: "ضمان مكتوب حتى ٥ سنوات", En: "Written warranty up to 5 years"},
			{Ar: "معالجة ما قبل البناء", En: "Pre-construction treatment"},
		},
		FAQs: []domain.FAQItem{
			{
				Question: domain.Bilingual{Ar: "كيف أعرف أن عندي نمل أبيض؟", En: "How do I know I have termites?"},
				Answer:   domain.Bilingual{Ar: "أنفاق طينية على الجدران وأصوات فرقعة خفيفة من الخشب من أشهر العلامات.", En: "Mud tubes on walls and faint clicking from wood are the most common signs."},
			},
		},
	},
	{
		Slug:        "bedbugs",
		Name:        domain.Bilingual{Ar: "مكافحة بق الفراش", En: "Bed Bug Treatment"},
		Tagline:     domain.Bilingual{Ar: "معالجة حرارية وكيميائية مزدوجة", En: "Combined heat and chemical treatment"},
		Description: domain.Bilingual{Ar: "نعالج غرف النوم والمفروشات بالبخار الحراري ثم بمبيدات متخصصة طويلة الأثر للقضاء على البق وبيوضه.", En: "Bedrooms and furnishings are steam-treated then sprayed with long-acting specialist pesticides to kill bugs and their eggs."},
		Image:       "/static/images/service-bedbugs.webp",
		Features: []domain.Bilingual{
			{Ar: "معالجة حرارية بالبخار", En: "Steam heat treatment"},
			{Ar: "زيارتان ضمن السعر", En: "Two visits included in the price"},
		},
		FAQs: []domain.FAQItem{
			{
				Question: domain.Bilingual{Ar: "هل أحتاج للتخلص من المرتبة؟", En: "Do I need to throw away my mattress?"},
				Answer:   domain.Bilingual{Ar: "في أغلب الحالات لا، المعالجة الحرارية تنقذ المراتب والمفروشات.", En: "In most cases no. Heat treatment saves mattresses and furnishings."},
			},
		},
	},
}

var posts = []domain.BlogContent{
	{
		Slug:        "termite-signs",
		Title:       domain.Bilingual{Ar: "علامات الإصابة بالنمل الأبيض", En: "Signs of a Termite Infestation"},
		Excerpt:     domain.Bilingual{Ar: "كيف تكتشف النمل الأبيض مبكرًا قبل أن يصل للأساسات.", En: "How to spot termites early, before they reach the foundations."},
		Body:        domain.Bilingual{Ar: "<p>النمل الأبيض يعمل في الخفاء، وغالبًا لا يظهر الضرر إلا بعد فوات الأوان...</p>", En: "<p>Termites work out of sight, and the damage often only shows when it is too late...</p>"},
		Author:      "Al-Ameen Pest Control",
		PublishedAt: time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		Image:       "/static/images/blog-termites.webp",
		TOC: []domain.TOCEntry{
			{ID: "mud-tubes", Title: domain.Bilingual{Ar: "الأنفاق الطينية", En: "Mud tubes"}, Level: 2},
			{ID: "hollow-wood", Title: domain.Bilingual{Ar: "الخشب المجوف", En: "Hollow wood"}, Level: 2},
			{ID: "what-to-do", Title: domain.Bilingual{Ar: "ماذا تفعل", En: "What to do"}, Level: 2},
		},
		Related: []domain.RelatedArticle{
			{Slug: "summer-pests", Title: domain.Bilingual{Ar: "آفات الصيف في جدة", En: "Summer Pests in Jeddah"}, Image: "/static/images/blog-summer.webp"},
		},
	},
	{
		Slug:        "summer-pests",
		Title:       domain.Bilingual{Ar: "آفات الصيف في جدة", En: "Summer Pests in Jeddah"},
		Excerpt:     domain.Bilingual{Ar: "الرطوبة والحرارة تجلبان الصراصير والبعوض، هكذا تستعد.", En: "Humidity and heat bring cockroaches and mosquitoes. Here is how to prepare."},
		Body:        domain.Bilingual{Ar: "<p>مع ارتفاع الرطوبة في جدة صيفًا تنشط الصراصير الألمانية والبعوض...</p>", En: "<p>As humidity rises in Jeddah each summer, German cockroaches and mosquitoes become active...</p>"},
		Author:      "Al-Ameen Pest Control",
		PublishedAt: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		Image:       "/static/images/blog-summer.webp",
		TOC: []domain.TOCEntry{
			{ID: "cockroaches", Title: domain.Bilingual{Ar: "الصراصير", En: "Cockroaches"}, Level: 2},
			{ID: "mosquitoes", Title: domain.Bilingual{Ar: "البعوض", En: "Mosquitoes"}, Level: 2},
		},
		Related: []domain.RelatedArticle{
			{Slug: "termite-signs", Title: domain.Bilingual{Ar: "علامات الإصابة بالنمل الأبيض", En: "Signs of a Termite Infestation"}, Image: "/static/images/blog-termites.webp"},
		},
	},
}

var districts = []domain.DistrictContent{
	{
		Slug:  "al-hamra",
		Name:  domain.Bilingual{Ar: "حي الحمراء", En: "Al-Hamra"},
		Blurb: domain.Bilingual{Ar: "فرق مكافحة حشرات تصل حي الحمراء خلال ساعتين.", En: "Pest control teams reach Al-Hamra within two hours."},
	},
	{
		Slug:  "al-rawdah",
		Name:  domain.Bilingual{Ar: "حي الروضة", En: "Al-Rawdah"},
		Blurb: domain.Bilingual{Ar: "خدمة يومية لحي الروضة شاملة الفلل والشقق.", En: "Daily service for Al-Rawdah, covering villas and apartments."},
	},
	{
		Slug:  "obhur-north",
		Name:  domain.Bilingual{Ar: "أبحر الشمالية", En: "Obhur North"},
		Blurb: domain.Bilingual{Ar: "برامج موسمية للاستراحات والشاليهات في أبحر الشمالية.", En: "Seasonal programmes for rest houses and chalets in Obhur North."},
	},
}

var testimonials = []domain.Testimonial{
	{
		Author: domain.Bilingual{Ar: "أم فهد", En: "Umm Fahad"},
		Quote:  domain.Bilingual{Ar: "اختفت الصراصير من أول زيارة والفريق محترم جدًا.", En: "The cockroaches were gone after the first visit and the team was very professional."},
		Rating: 5,
	},
	{
		Author: domain.Bilingual{Ar: "محمد العتيبي", En: "Mohammed Al-Otaibi"},
		Quote:  domain.Bilingual{Ar: "عالجوا النمل الأبيض في الملحق وأعطوني ضمان مكتوب.", En: "They treated the termites in the annex and gave me a written warranty."},
		Rating: 5,
	},
	{
		Author: domain.Bilingual{Ar: "سارة", En: "Sarah"},
		Quote:  domain.Bilingual{Ar: "سعرهم مناسب والتزموا بالموعد.", En: "Fair price and they showed up on time."},
		Rating: 4,
	},
}

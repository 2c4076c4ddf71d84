// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package content

// Shared default documents: the single source of truth per layout slot,
// consumed by the public loader, the admin editor, and the tests alike.
// Defaults must never be duplicated at call sites.

// DefaultHome returns the fallback home page document for a language.
func DefaultHome(language string) HomeDocument {
	if language == "en" {
		return HomeDocument{
			HeroTitle:    "Industrial Steel Construction",
			HeroSubtitle: "Engineering, fabrication and assembly under one roof",
			Features: []Feature{
				{Icon: "factory", Title: "Modern Facility", Text: "12,000 m² of closed production area"},
				{Icon: "crane", Title: "Heavy Assembly", Text: "On-site assembly teams across the country"},
				{Icon: "certificate", Title: "Certified Quality", Text: "EN 1090 and ISO 9001 certified processes"},
			},
			Stats: []Stat{
				{Label: "Completed Projects", Value: "250+"},
				{Label: "Years of Experience", Value: "30"},
				{Label: "Annual Capacity (tons)", Value: "18,000"},
			},
		}
	}

	return HomeDocument{
		HeroTitle:    "Endüstriyel Çelik Konstrüksiyon",
		HeroSubtitle: "Mühendislik, imalat ve montaj tek çatı altında",
		Features: []Feature{
			{Icon: "factory", Title: "Modern Tesis", Text: "12.000 m² kapalı üretim alanı"},
			{Icon: "crane", Title: "Ağır Montaj", Text: "Yurt genelinde saha montaj ekipleri"},
			{Icon: "certificate", Title: "Belgeli Kalite", Text: "EN 1090 ve ISO 9001 belgeli süreçler"},
		},
		Stats: []Stat{
			{Label: "Tamamlanan Proje", Value: "250+"},
			{Label: "Yıllık Tecrübe", Value: "30"},
			{Label: "Yıllık Kapasite (ton)", Value: "18.000"},
		},
	}
}

// DefaultAbout returns the fallback about page document for a language.
func DefaultAbout(language string) AboutDocument {
	if language == "en" {
		return AboutDocument{
			StoryTitle: "Our Story",
			StoryParagraphs: []string{
				"Founded as a family workshop, the company has grown into a full-scope steel construction contractor.",
				"Today we deliver industrial plants, warehouses and commercial structures across the region.",
			},
			Mission: "To deliver safe, durable steel structures on time and on budget.",
			Vision:  "To be the first choice for industrial steel construction in the region.",
			Values: []ValueItem{
				{Title: "Safety", Text: "No schedule justifies an unsafe site."},
				{Title: "Craftsmanship", Text: "Every weld is signed by its welder."},
			},
		}
	}

	return AboutDocument{
		StoryTitle: "Hikayemiz",
		StoryParagraphs: []string{
			"Aile atölyesi olarak kurulan firmamız, bugün anahtar teslim çelik konstrüksiyon yüklenicisidir.",
			"Endüstriyel tesisler, depolar ve ticari yapılar bölge genelinde teslim edilmektedir.",
		},
		Mission: "Güvenli ve dayanıklı çelik yapıları zamanında ve bütçesinde teslim etmek.",
		Vision:  "Bölgede endüstriyel çelik yapının ilk tercihi olmak.",
		Values: []ValueItem{
			{Title: "Güvenlik", Text: "Hiçbir termin güvensiz bir sahayı haklı çıkarmaz."},
			{Title: "İşçilik", Text: "Her kaynak, kaynakçısının imzasını taşır."},
		},
	}
}

// DefaultFooter returns the fallback footer document for a language.
func DefaultFooter(language string) FooterDocument {
	footer := FooterDocument{
		CompanyName: "Demirhan Çelik Konstrüksiyon",
		Tagline:     "Çelikte güvenin adresi",
		Address:     "Organize Sanayi Bölgesi 12. Cadde No: 7, Kocaeli",
		Phone:       "+90 262 000 00 00",
		Email:       "info@demirhancelik.com",
		QuickLinks: []FooterLink{
			{Label: "Projeler", URL: "/projeler"},
			{Label: "Fabrika", URL: "/fabrika"},
			{Label: "İletişim", URL: "/iletisim"},
		},
	}

	if language == "en" {
		footer.Tagline = "Trusted in steel"
		footer.QuickLinks = []FooterLink{
			{Label: "Projects", URL: "/en/projects"},
			{Label: "Factory", URL: "/en/factory"},
			{Label: "Contact", URL: "/en/contact"},
		}
	}

	return footer
}

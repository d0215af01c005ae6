package main

import "github.com/aqardot/aqardot-api/internal/models"

// Bundled governorate tree. Every city list ends with the "other" entry so
// users can submit areas the taxonomy does not cover yet.
var governorates = []models.Governorate{
	{
		Name: "Cairo", NameAr: "القاهرة", Slug: "cairo", Sort: 1,
		Cities: []models.City{
			{
				Name: "New Cairo", NameAr: "القاهرة الجديدة", Slug: "new-cairo", Popular: true,
				Areas: []models.Area{
					{
						Name: "Fifth Settlement", NameAr: "التجمع الخامس", Slug: "fifth-settlement",
						Subareas: []models.Subarea{
							{Name: "North 90th", NameAr: "التسعين الشمالي", Slug: "north-90th"},
							{Name: "South 90th", NameAr: "التسعين الجنوبي", Slug: "south-90th"},
						},
					},
					{Name: "First Settlement", NameAr: "التجمع الأول", Slug: "first-settlement"},
					{Name: "Third Settlement", NameAr: "التجمع الثالث", Slug: "third-settlement"},
				},
			},
			{
				Name: "Nasr City", NameAr: "مدينة نصر", Slug: "nasr-city", Popular: true,
				Areas: []models.Area{
					{Name: "First Zone", NameAr: "المنطقة الأولى", Slug: "first-zone"},
					{Name: "Abbas El Akkad", NameAr: "عباس العقاد", Slug: "abbas-el-akkad"},
				},
			},
			{Name: "Maadi", NameAr: "المعادي", Slug: "maadi", Popular: true,
				Areas: []models.Area{
					{Name: "Degla", NameAr: "دجلة", Slug: "degla"},
					{Name: "Zahraa El Maadi", NameAr: "زهراء المعادي", Slug: "zahraa-el-maadi"},
				},
			},
			{Name: "Heliopolis", NameAr: "مصر الجديدة", Slug: "heliopolis", Popular: true},
			{Name: "Shorouk", NameAr: "الشروق", Slug: "shorouk"},
			{Name: "Madinaty", NameAr: "مدينتي", Slug: "madinaty"},
			{Name: "Other", NameAr: "أخرى", Slug: "other"},
		},
	},
	{
		Name: "Giza", NameAr: "الجيزة", Slug: "giza", Sort: 2,
		Cities: []models.City{
			{
				Name: "6th of October", NameAr: "السادس من أكتوبر", Slug: "6th-of-october", Popular: true,
				Areas: []models.Area{
					{Name: "First District", NameAr: "الحي الأول", Slug: "first-district"},
					{Name: "Gardens District", NameAr: "حي الحدائق", Slug: "gardens-district"},
				},
			},
			{Name: "Sheikh Zayed", NameAr: "الشيخ زايد", Slug: "sheikh-zayed", Popular: true,
				Areas: []models.Area{
					{Name: "Beverly Hills", NameAr: "بيفرلي هيلز", Slug: "beverly-hills"},
					{Name: "Zayed 2000", NameAr: "زايد 2000", Slug: "zayed-2000"},
				},
			},
			{Name: "Dokki", NameAr: "الدقي", Slug: "dokki"},
			{Name: "Mohandessin", NameAr: "المهندسين", Slug: "mohandessin"},
			{Name: "Haram", NameAr: "الهرم", Slug: "haram"},
			{Name: "Other", NameAr: "أخرى", Slug: "other"},
		},
	},
	{
		Name: "Alexandria", NameAr: "الإسكندرية", Slug: "alexandria", Sort: 3,
		Cities: []models.City{
			{Name: "Smouha", NameAr: "سموحة", Slug: "smouha", Popular: true},
			{Name: "Miami", NameAr: "ميامي", Slug: "miami"},
			{Name: "Montaza", NameAr: "المنتزه", Slug: "montaza"},
			{Name: "Agami", NameAr: "العجمي", Slug: "agami"},
			{Name: "Borg El Arab", NameAr: "برج العرب", Slug: "borg-el-arab"},
			{Name: "Other", NameAr: "أخرى", Slug: "other"},
		},
	},
	{
		Name: "Red Sea", NameAr: "البحر الأحمر", Slug: "red-sea", Sort: 4,
		Cities: []models.City{
			{Name: "Hurghada", NameAr: "الغردقة", Slug: "hurghada", Popular: true},
			{Name: "El Gouna", NameAr: "الجونة", Slug: "el-gouna"},
			{Name: "Sahl Hasheesh", NameAr: "سهل حشيش", Slug: "sahl-hasheesh"},
			{Name: "Other", NameAr: "أخرى", Slug: "other"},
		},
	},
	{
		Name: "Matrouh", NameAr: "مطروح", Slug: "matrouh", Sort: 5,
		Cities: []models.City{
			{Name: "North Coast", NameAr: "الساحل الشمالي", Slug: "north-coast", Popular: true},
			{Name: "Marsa Matrouh", NameAr: "مرسى مطروح", Slug: "marsa-matrouh"},
			{Name: "El Alamein", NameAr: "العلمين", Slug: "el-alamein"},
			{Name: "Other", NameAr: "أخرى", Slug: "other"},
		},
	},
	{
		Name: "South Sinai", NameAr: "جنوب سيناء", Slug: "south-sinai", Sort: 6,
		Cities: []models.City{
			{Name: "Sharm El Sheikh", NameAr: "شرم الشيخ", Slug: "sharm-el-sheikh", Popular: true},
			{Name: "Dahab", NameAr: "دهب", Slug: "dahab"},
			{Name: "Other", NameAr: "أخرى", Slug: "other"},
		},
	},
}

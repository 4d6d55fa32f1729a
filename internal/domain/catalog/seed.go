package catalog

func seedClinics() []Clinic {
	return []Clinic{
		{
			ID:        "1",
			Name:      "عيادة أقدام سعيدة البيطرية",
			Address:   "شارع الملك فهد، الرياض، المملكة العربية السعودية",
			Phone:     "(966) 11-123-4567",
			Rating:    4.8,
			Image:     "https://via.placeholder.com/300x200/4A90E2/FFFFFF?text=عيادة+أقدام+سعيدة",
			Services:  []string{"فحص عام", "تطعيم", "جراحة", "عناية بالأسنان"},
			Distance:  "0.5 كم",
			OpenHours: "السبت-الخميس: 8ص-6م، الجمعة: 9ص-4م",
		},
		{
			ID:        "2",
			Name:      "مركز رعاية الحيوانات الأليفة",
			Address:   "شارع العليا، الرياض، المملكة العربية السعودية",
			Phone:     "(966) 11-987-6543",
			Rating:    4.6,
			Image:     "https://via.placeholder.com/300x200/50C878/FFFFFF?text=مركز+رعاية+الحيوانات",
			Services:  []string{"رعاية طوارئ", "تجميل", "إقامة", "تدريب"},
			Distance:  "1.2 كم",
			OpenHours: "خدمة الطوارئ على مدار الساعة",
		},
		{
			ID:        "3",
			Name:      "مستشفى الحيوانات",
			Address:   "شارع التحلية، الرياض، المملكة العربية السعودية",
			Phone:     "(966) 11-456-7890",
			Rating:    4.9,
			Image:     "https://via.placeholder.com/300x200/FF6B6B/FFFFFF?text=مستشفى+الحيوانات",
			Services:  []string{"رعاية متخصصة", "تشخيص", "علاج طبيعي", "استشارة تغذية"},
			Distance:  "2.1 كم",
			OpenHours: "السبت-الخميس: 7ص-7م، الجمعة والأحد: 8ص-5م",
		},
	}
}

func seedServices() []Service {
	return []Service{
		{ID: "1", Name: "فحص عام", Duration: 30, Price: 75, Description: "فحص صحي شامل"},
		{ID: "2", Name: "تطعيم", Duration: 15, Price: 45, Description: "حقن التطعيم السنوية"},
		{ID: "3", Name: "تنظيف الأسنان", Duration: 60, Price: 150, Description: "تنظيف أسنان احترافي وفحص"},
		{ID: "4", Name: "زيارة طوارئ", Duration: 45, Price: 120, Description: "رعاية طبية عاجلة"},
		{ID: "5", Name: "استشارة جراحية", Duration: 30, Price: 100, Description: "استشارة ما قبل الجراحة والتخطيط"},
		{ID: "6", Name: "خدمة التجميل", Duration: 90, Price: 60, Description: "خدمة تجميل ونظافة كاملة"},
	}
}

func seedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "طعام الكلاب المميز",
			Price:       29.99,
			Image:       "https://images.unsplash.com/photo-1583337130417-3346a1be7dee?w=400&h=400&fit=crop",
			Category:    CategoryFood,
			PetType:     PetTypeDog,
			Description: "تغذية عالية الجودة للكلاب البالغة، غني بالبروتين والفيتامينات الضرورية لصحة الكلب",
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "صندوق فضلات القطط",
			Price:       19.99,
			Image:       "https://images.unsplash.com/photo-1598300042247-d088f8ab3a91?w=400&h=400&fit=crop",
			Category:    CategoryAccessories,
			PetType:     PetTypeCat,
			Description: "صندوق فضلات ذاتي التنظيف للقطط، سهل الاستخدام والتنظيف",
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "مجموعة ألعاب الحيوانات",
			Price:       15.99,
			Image:       "https://images.unsplash.com/photo-1601758228041-f3b2795255f1?w=400&h=400&fit=crop",
			Category:    CategoryToys,
			PetType:     PetTypeBoth,
			Description: "ألعاب تفاعلية للقطط والكلاب، تساعد في الترفيه والتمرين",
			InStock:     true,
		},
		{
			ID:          "4",
			Name:        "طوق الكلاب",
			Price:       12.99,
			Image:       "https://images.unsplash.com/photo-1605568427561-40dd23c2acea?w=400&h=400&fit=crop",
			Category:    CategoryAccessories,
			PetType:     PetTypeDog,
			Description: "طوق جلدي متين مع بطاقة هوية، آمن ومريح للكلاب",
			InStock:     true,
		},
		{
			ID:          "5",
			Name:        "عمود خدش القطط",
			Price:       24.99,
			Image:       "https://images.unsplash.com/photo-1596854407944-bf87f6fdd49e?w=400&h=400&fit=crop",
			Category:    CategoryAccessories,
			PetType:     PetTypeCat,
			Description: "عمود خدش متعدد المستويات للقطط، يحافظ على مخالب القطط",
			InStock:     true,
		},
		{
			ID:          "6",
			Name:        "فيتامينات الحيوانات الأليفة",
			Price:       18.99,
			Image:       "https://images.unsplash.com/photo-1583337130417-3346a1be7dee?w=400&h=400&fit=crop",
			Category:    CategoryHealth,
			PetType:     PetTypeBoth,
			Description: "فيتامينات أساسية لصحة الحيوانات الأليفة، تعزز المناعة والصحة العامة",
			InStock:     true,
		},
		{
			ID:          "7",
			Name:        "رباط الكلاب",
			Price:       8.99,
			Image:       "https://images.unsplash.com/photo-1605568427561-40dd23c2acea?w=400&h=400&fit=crop",
			Category:    CategoryAccessories,
			PetType:     PetTypeDog,
			Description: "رباط قابل للسحب للكلاب، آمن ومتين للمشي والتمرين",
			InStock:     false,
		},
		{
			ID:          "8",
			Name:        "طعام القطط",
			Price:       22.99,
			Image:       "https://images.unsplash.com/photo-1596854407944-bf87f6fdd49e?w=400&h=400&fit=crop",
			Category:    CategoryFood,
			PetType:     PetTypeCat,
			Description: "طعام القطط الخالي من الحبوب، صحي ومتوازن التغذية",
			InStock:     true,
		},
		{
			ID:          "9",
			Name:        "تربة للقطط 10 لتر شركة بروآرت",
			Price:       35.99,
			Image:       "/assets/products/proart-cat-litter-10l.png",
			Category:    CategoryAccessories,
			PetType:     PetTypeCat,
			Description: "تربة عالية الامتصاص للقطط من شركة بروآرت، سعة 10 لتر، تحافظ على النظافة والرائحة الطيبة",
			InStock:     true,
		},
		{
			ID:          "10",
			Name:        "كات ليتر من شركة إينرجي برائحة اللافندر 10 لتر",
			Price:       32.99,
			Image:       "/assets/products/energy-lavender-cat-litter-10l.png",
			Category:    CategoryAccessories,
			PetType:     PetTypeCat,
			Description: "تربة القطط من إينرجي برائحة اللافندر المهدئة، سعة 10 لتر، تمنع الروائح الكريهة",
			InStock:     true,
		},
		{
			ID:          "11",
			Name:        "مونيلو أكل القطط الصغيرة نكهة الدجاج والسالمون 1 كيلو",
			Price:       28.99,
			Image:       "/assets/products/monello-kitten-chicken-salmon-1kg.png",
			Category:    CategoryFood,
			PetType:     PetTypeCat,
			Description: "طعام مخصص للقطط الصغيرة من مونيلو، نكهة الدجاج والسالمون، غني بالبروتين والفيتامينات",
			InStock:     true,
		},
		{
			ID:          "12",
			Name:        "مونيلو طعام جاف القطط البالغة نكهة الدجاج والسالمون 1 كيلو",
			Price:       26.99,
			Image:       "/assets/products/monello-adult-chicken-salmon-1kg.png",
			Category:    CategoryFood,
			PetType:     PetTypeCat,
			Description: "طعام جاف للقطط البالغة من مونيلو، نكهة الدجاج والسالمون، متوازن التغذية",
			InStock:     true,
		},
	}
}

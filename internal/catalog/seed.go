package catalog

import "github.com/bobby-s-dev/swimspot/internal/models"

// Seed data collected from visitoslo.com, oslo.kommune.no and the municipal
// pages of Bergen, Trondheim, Tromsø, Fredrikstad, Kristiansand and Stavanger.
var seed = []models.Location{
	{
		Name:       "Grønevika badestrand",
		Facilities: []models.Facility{
			models.FacilityChildFriendly,
			models.FacilityPier,
			models.FacilityAccessible,
			models.FacilityToilet,
		},
		Image:      "https://www.bergen.kommune.no/api/rest/bilder/V20091476?scaleWidth=1400&cropX1=0&cropY1=50&cropX2=900&cropY2=560",
		Latitude:   60.2557837,
		Longitude:  5.1359323,
	},
	{
		Name:       "Helleneset",
		Facilities: []models.Facility{models.FacilityChildFriendly, models.FacilityAccessible, models.FacilityPier},
		Image:      "https://www.bergen.kommune.no/api/rest/bilder/V20041646?scaleWidth=1400",
		Latitude:   60.435539,
		Longitude:  5.1840409,
	},
	{
		Name:       "Toppesanden",
		Facilities: []models.Facility{models.FacilityGrill, models.FacilityToilet},
		Image:      "https://www.bergen.kommune.no/api/rest/bilder/V20091981?scaleWidth=1400&cropX1=0&cropY1=201&cropX2=3873&cropY2=2392",
		Latitude:   60.4928223,
		Longitude:  5.1476127,
	},
	{
		Name:       "Korsvika",
		Facilities: []models.Facility{models.FacilityAccessible, models.FacilityGrill},
		Image:      "https://images.citybreakcdn.com/image.aspx?ImageId=4662702&width=1000&height=600&fitaspect=1",
		Latitude:   63.4501544,
		Longitude:  10.4097456,
	},
	{
		Name:       "Munkholmen",
		Facilities: []models.Facility{models.FacilityGrill, models.FacilityToilet},
		Image:      "https://visittrondheim.no/wp-content/uploads/2021/05/Munkholmen.jpg",
		Latitude:   63.4518825,
		Longitude:  10.3814928,
	},
	{
		Name:       "Sjøbadet",
		Facilities: []models.Facility{models.FacilityAccessible, models.FacilityPier},
		Image:      "https://vcdn.polarismedia.no/0725c4f9-ac2d-4711-96c1-ed06bdb5eea8?fit=crop&h=600&q=80&tight=false&w=1000",
		Latitude:   63.435685,
		Longitude:  10.3592204,
	},
	{
		Name:       "Telegrafbukta",
		Facilities: []models.Facility{models.FacilityGrill, models.FacilityKiosk, models.FacilityPier},
		Image:      "https://www.linnsreise.no/wp-content/uploads/2023/07/Telegrafbukta-2023-scaled.jpg",
		Latitude:   69.6298984,
		Longitude:  18.8804589,
	},
	{
		Name:       "Grøtfjord",
		Facilities: []models.Facility{models.FacilityToilet},
		Image:      "https://www.linnsreise.no/wp-content/uploads/2023/07/Grotfjorden-oveenfra.jpg",
		Latitude:   69.7789653,
		Longitude:  18.5274836,
	},
	{
		Name:       "Sommarøya",
		Facilities: nil,
		Image:      "https://www.linnsreise.no/wp-content/uploads/2023/07/steinsvika-sommaroy-scaled.jpg",
		Latitude:   69.6337869,
		Longitude:  18.0013544,
	},
	{
		Name:       "Badstuene på Langkaia",
		Facilities: nil,
		Image:      "https://g.acdn.no/obscura/API/dynamic/r1/ece5/tr_1000_2000_s_f/0000/avio/2021/7/15/16/AVISA%2BOSLO-BADSTUE%2BBADEMASCHINEN-15.07.2021-17.jpg?chk=97F3F9",
		Latitude:   59.9080322,
		Longitude:  10.7494909,
	},
	{
		Name:       "Badstuene på Sukkerbiten",
		Facilities: nil,
		Image:      "https://www.godeidrettsanlegg.no/sites/default/files/bilder/Munken%20og%20Munch.jpg",
		Latitude:   59.904931,
		Longitude:  10.7530656,
	},
	{
		Name:       "Bekkelagsbadet",
		Facilities: []models.Facility{
			models.FacilityChildFriendly,
			models.FacilityGrill,
			models.FacilityKiosk,
			models.FacilityAccessible,
			models.FacilityToilet,
			models.FacilityPier,
		},
		Image:      "https://img.oslo.kommune.no/_prod_/13332477-1561984495/Tjenester%20og%20tilbud/Natur%2C%20kultur%20og%20fritid/Badeplasser%20og%20temperaturer/Bekkelagsbadet/Galleri/Hovedbilde.JPG?w=792&aspect_ratio=16%3A9&gravity=face",
		Latitude:   59.8802127,
		Longitude:  10.7652386,
	},
	{
		Name:       "Bekkensten",
		Facilities: []models.Facility{models.FacilityPier},
		Image:      "https://www.dnt.no/globalassets/fotoware/2023/11/stian-pa-stien-ekspedisjon-strandsone-118.jpg?width=600&amp;height=600&amp;rmode=crop&amp;format=webp",
		Latitude:   59.791936,
		Longitude:  10.734552,
	},
	{
		Name:       "Bestemorstranda",
		Facilities: []models.Facility{models.FacilityToilet, models.FacilityPier},
		Image:      "https://www.oslofjorden.com/bilde_badestrand/akershus/bestemorstranda_bunnefjorden_oversikt.JPG",
		Latitude:   59.8270535,
		Longitude:  10.7592003,
	},
	{
		Name:       "Bygdøy sjøbad",
		Facilities: nil,
		Image:      "https://i0.wp.com/reisekick.no/wp-content/uploads/2020/10/Bygdoy-strand.jpg?resize=960%2C720&ssl=1",
		Latitude:   59.9107295,
		Longitude:  10.6659127,
	},
	{
		Name:       "Fiskevollbukta",
		Facilities: nil,
		Image:      "https://www.oslofjorden.com/bilde_badestrand/oslo/fiskevollbukta_badeplass_info2.JPG",
		Latitude:   59.8425427,
		Longitude:  10.7733261,
	},
	{
		Name:       "Gressholmen",
		Facilities: []models.Facility{models.FacilityToilet},
		Image:      "https://www.oslofjorden.com/bilde_badestrand/oslo/gressholmen_badeplass_oslo_info1.JPG",
		Latitude:   59.8844439,
		Longitude:  10.7202778,
	},
	{
		Name:       "Hovedøya",
		Facilities: []models.Facility{models.FacilityChildFriendly, models.FacilityKiosk, models.FacilityToilet},
		Image:      "https://upload.wikimedia.org/wikipedia/commons/thumb/b/b8/Hoved%C3%B8ya_aerial.jpg/1200px-Hoved%C3%B8ya_aerial.jpg",
		Latitude:   59.895146,
		Longitude:  10.732618,
	},
	{
		Name:       "Huk",
		Facilities: []models.Facility{
			models.FacilitySupervised,
			models.FacilityGrill,
			models.FacilityKiosk,
			models.FacilityToilet,
		},
		Image:      "https://dynamic-media-cdn.tripadvisor.com/media/photo-o/0f/f1/6e/de/huk.jpg?w=1200&h=-1&s=1",
		Latitude:   59.8988725,
		Longitude:  10.6713689,
	},
	{
		Name:       "Hvervenbukta",
		Facilities: []models.Facility{
			models.FacilitySupervised,
			models.FacilityChildFriendly,
			models.FacilityAccessible,
			models.FacilityToilet,
		},
		Image:      "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a5/Hvervenbukta_-_2014-04-28_at_19-31-25.jpg/1200px-Hvervenbukta_-_2014-04-28_at_19-31-25.jpg",
		Latitude:   59.8329619,
		Longitude:  10.7712197,
	},
	{
		Name:       "Håøya",
		Facilities: []models.Facility{models.FacilityToilet},
		Image:      "https://www.visitgreateroslo.com/globalassets/bilder-akershus/follo/frogn-kommune-vdo-bilder/2022---var/haoya-foto-paul-hughson-visitdrobakoscarsborg.no_5.jpg",
		Latitude:   59.6979625,
		Longitude:  10.5740849,
	},
	{
		Name:       "Ingierstrand",
		Facilities: []models.Facility{
			models.FacilitySupervised,
			models.FacilityKiosk,
			models.FacilityAccessible,
			models.FacilityToilet,
		},
		Image:      "https://assets.simpleviewcms.com/simpleview/image/fetch/c_limit,h_1200,q_75,w_1200/https://media.newmindmedia.com/TellUs/image/%3Ffile%3DScreen_Shot_2018-11-12_at_12.09.12_1930375555.png%26dh%3D520%26dw%3D800%26t%3D4",
		Latitude:   59.8183055,
		Longitude:  10.7490928,
	},
	{
		Name:       "Katten",
		Facilities: []models.Facility{models.FacilityChildFriendly, models.FacilityGrill, models.FacilityToilet},
		Image:      "https://img.oslo.kommune.no/_prod_/13492517-1697799745/Tjenester%20og%20tilbud/Natur%2C%20kultur%20og%20fritid/Badeplasser%20og%20temperaturer/Katten/Galleri/Katten%204%20-%20Bymilj%C3%B8etaten.jpg?w=792&aspect_ratio=16%3A9&gravity=face",
		Latitude:   59.8552145,
		Longitude:  10.7832094,
	},
	{
		Name:       "Langøyene",
		Facilities: []models.Facility{
			models.FacilityChildFriendly,
			models.FacilityKiosk,
			models.FacilityAccessible,
			models.FacilityToilet,
			models.FacilityPier,
		},
		Image:      "https://tellusdmsmedia.newmindmedia.com/wsimgs/DJI_0749_112534413.jpg[ProductImage][4D037919A6C329D04191FE6E4EBC]",
		Latitude:   59.870694,
		Longitude:  10.7217348,
	},
	{
		Name:       "Nordstrand bad",
		Facilities: []models.Facility{models.FacilityToilet, models.FacilityPier},
		Image:      "https://img.oslo.kommune.no/_prod_/13494546-1699019281/Tjenester%20og%20tilbud/Natur%2C%20kultur%20og%20fritid/Badeplasser%20og%20temperaturer/Nordstrand%20bad/Galleri/Nordstrand%20bad4.jpg%20%2816_10%29.jpg?w=792&aspect_ratio=16%3A9&gravity=face",
		Latitude:   59.8688127,
		Longitude:  10.7819728,
	},
	{
		Name:       "Operastranda",
		Facilities: []models.Facility{models.FacilityToilet},
		Image:      "https://assets.simpleviewcms.com/simpleview/image/fetch/c_fill,h_1080,w_1920/f_jpg/q_65/https://media.newmindmedia.com/TellUs/image/%3Ffile%3Doperastranda-mot-operaen_218887326.jpg&dh%3D600&dw%3D800&cropX%3D146&cropY%3D9&cropH%3D765&cropW%3D1020&t%3D4",
		Latitude:   59.9065786,
		Longitude:  10.7526328,
	},
	{
		Name:       "Paradisbukta",
		Facilities: nil,
		Image:      "https://listerfriluft.no/media/83804/img_7429rm.jpg?anchor=center&mode=crop&width=768&height=432&rnd=133161849450000000",
		Latitude:   59.9019505,
		Longitude:  10.6656571,
	},
	{
		Name:       "Rambergøya",
		Facilities: nil,
		Image:      "https://www.oslofjorden.com/bilde_badestrand/oslo/rambergoeya_badeplass_oslo_info3.JPG",
		Latitude:   59.8825479,
		Longitude:  10.7185014,
	},
	{
		Name:       "Skinnerbukta (Malmøya)",
		Facilities: nil,
		Image:      "https://www.norskhavneguide.no/static/images/skinnerbukta-0hr0qh-1200.webp",
		Latitude:   59.8673255,
		Longitude:  10.7538509,
	},
	{
		Name:       "Sollerudstranda",
		Facilities: nil,
		Image:      "https://landskapsarkitektur.no/prosjekter/sollerudstranda?iid=233030&pid=NLA-Prosjekt-Bilder.NLA-ProsjektBilde-Prosjektbilde&r_n_d=45795_&adjust=1&x=320&y=220&from=0&zmode=fill",
		Latitude:   59.9138771,
		Longitude:  10.6471785,
	},
	{
		Name:       "Solvikbukta på Malmøya",
		Facilities: []models.Facility{
			models.FacilityKiosk,
			models.FacilityAccessible,
			models.FacilityToilet,
			models.FacilityPier,
		},
		Image:      "https://www.norskhavneguide.no/static/images/skinnerbukta-0hr0qh-1200.webp",
		Latitude:   59.8930334,
		Longitude:  10.5492851,
	},
	{
		Name:       "Sørenga sjøbad",
		Facilities: []models.Facility{
			models.FacilitySupervised,
			models.FacilityChildFriendly,
			models.FacilityKiosk,
			models.FacilityAccessible,
			models.FacilityToilet,
			models.FacilityPier,
		},
		Image:      "https://assets.simpleviewcms.com/simpleview/image/fetch/c_fill,h_1080,w_1920/f_jpg/q_65/https://media.newmindmedia.com/TellUs/image/%3Ffile%3DS_renga_sj_bad_2Katrine_Lunke_593782387.jpg&dh%3D534&dw%3D800&cropX%3D0&cropY%3D0&cropH%3D4910&cropW%3D7360&t%3D4",
		Latitude:   59.9011363,
		Longitude:  10.751058,
	},
	{
		Name:       "Ulvøya",
		Facilities: nil,
		Image:      "https://tellusdmsmedia.newmindmedia.com/wsimgs/Tjuvholmen_Bystrand_VISITOSLO_Torgny_Gustafsson_973882663.jpg",
		Latitude:   59.8695107,
		Longitude:  10.771873,
	},
	{
		Name:       "Tangen badestrand",
		Facilities: nil,
		Image:      "https://www.fredrikstad.kommune.no/globalassets/bilder/kmb/miljo-og-landbruk/badeplasser---gallerier/tangen/tangen7.jpg",
		Latitude:   59.14037284157208,
		Longitude:  10.953739082199487,
	},
	{
		Name:       "Foten badeplass",
		Facilities: nil,
		Image:      "https://res.cloudinary.com/ssp/image/fetch/w_710,c_fill/https://www.fredrikstad.kommune.no//globalassets/bilder/kmb/miljo-og-landbruk/badeplasser---gallerier/foten/foten-6.jpg",
		Latitude:   59.17113705410745,
		Longitude:  10.828209484321992,
	},
	{
		Name:       "Fuglevikstand",
		Facilities: nil,
		Image:      "https://external-content.duckduckgo.com/iu/?u=https%3A%2F%2Ffuglevikstranda.no%2Fwp-content%2Fuploads%2F2022%2F11%2Fforside-3.jpg&f=1&nofb=1&ipt=e9ac5ebd0cba8b573e940826aca19178315dc140edb1aa3b380a528de5ed1642&ipo=images",
		Latitude:   59.18912769898772,
		Longitude:  10.945551687782135,
	},
	{
		Name:       "Enhuskilen",
		Facilities: nil,
		Image:      "https://www.fredrikstad.kommune.no/globalassets/bilder/kmb/miljo-og-landbruk/badeplasser---gallerier/enhus/enhuus-2.jpg",
		Latitude:   59.18575521687046,
		Longitude:  10.908972688790987,
	},
	{
		Name:       "Bendiksbukta",
		Facilities: nil,
		Image:      "https://assets.simpleviewcms.com/simpleview/image/fetch/c_limit,h_1200,q_75,w_1200/https://media.newmindmedia.com/TellUs/image/%3Ffile%3DEC12405F760034D7287794D9597E7A1FC787D7F7.jpg%26dh%3D532%26dw%3D800%26cropX%3D0%26cropY%3D158%26cropH%3D2172%26cropW%3D3264%26t%3D4",
		Latitude:   58.14071651665333,
		Longitude:  8.00265393731935,
	},
	{
		Name:       "Buøyna",
		Facilities: nil,
		Image:      "https://lh5.googleusercontent.com/p/AF1QipOrWtIM4LDWkOfj2Qtl0umNx29M6-Pi3AWc3tBY=w480-h300-k-n-rw",
		Latitude:   58.19237572716935,
		Longitude:  8.075285187469499,
	},
	{
		Name:       "Bystranda",
		Facilities: nil,
		Image:      "https://external-content.duckduckgo.com/iu/?u=https%3A%2F%2Fassets.simpleviewcms.com%2Fsimpleview%2Fimage%2Ffetch%2Fc_limit%2Ch_1200%2Cq_75%2Cw_1200%2Fhttps%3A%2F%2Fmedia.newmindmedia.com%2FTellUs%2Fimage%2F%253Ffile%253DPalmer_p_bystranda_1786689711.JPG%2526dh%253D800%2526dw%253D800%2526t%253D4&f=1&nofb=1&ipt=dc22a93f1eb5ba01af6ebbc5619292dde2a2e47c035e91b64cbec2c835e3f2b3&ipo=images",
		Latitude:   58.146117609470544,
		Longitude:  8.007074290782567,
	},
	{
		Name:       "Gamlestranda",
		Facilities: nil,
		Image:      "https://lh5.googleusercontent.com/p/AF1QipOYHB_QDWNpLZPFmxyhit3h_iJ-bSfH-sp8bRwo=w408-h306-k-no",
		Latitude:   58.07853509430875,
		Longitude:  8.017397479221716,
	},
	{
		Name:       "Godalen strand",
		Facilities: nil,
		Image:      "https://www.stavanger.kommune.no/siteassets/kultur-og-fritid/parker-og-friomrader/badeplasser-friomrader-parker/rosenli/20220616-img_0664.jpg?width=1920&height=1080&transform=DownFit&h=26a7d2ca3b5b7512a6bbac565b0199799fe489b2",
		Latitude:   58.954067598203125,
		Longitude:  5.75672611652455,
	},
	{
		Name:       "Sjøbadet (Stavanger)",
		Facilities: nil,
		Image:      "https://assets.simpleviewcms.com/simpleview/image/fetch/c_fill,h_1080,w_1920/f_jpg/q_65/https://res.cloudinary.com/djew0njor/image/upload/v1625829917/GYmIHu2McG7i2zlp2YlE9.jpg?_a=BATCtdAA0",
		Latitude:   58.94735184488721,
		Longitude:  5.570332286475677,
	},
	{
		Name:       "Vaulen badeplass",
		Facilities: nil,
		Image:      "https://www.stavanger.kommune.no/siteassets/kultur-og-fritid/parker-og-friomrader/badeplasser-friomrader-parker/vaulen/20220616-img_0694.jpg?width=1280&height=600&transform=DownFit&h=cb9a0c82c10b9442f95cd5643eca7859005690c2",
		Latitude:   58.92597432235386,
		Longitude:  5.747490919194079,
	},
	{
		Name:       "Holmavika badeplass",
		Facilities: nil,
		Image:      "https://delivery.twentythree.com/11513685/28086013/large?revision=4&domain=video.tvvest.no&Expires=1715490000&Signature=cQqqxYhp39LjYar9A1WpuKRTUr%7eP0NW9tG%2dGSviVtyz1Gb0SPOoUHzzmJcsL7SpHEcG5uQZwvka0sAHBqCqNX0Il8b9U8JZNLKuqFVh9XKGDWXLiS2EzxWa16lM5WvJJ555QSxlkyCn3dQikX%7eTV%2dcbA7v71VYz3mNUlg9jqlnOeEUerw479PujNXWFfLxevz4a5l6VPFIvg4iXPVbuwM8msRx1rN7j6fwk6C6u5laQWn97kxwnDivhgincpks3dFrnamUewTjIwF7fclTqdZuMSTZD2EvMIBHmNaHLJaKO8xphW9P4gArkWZQHRrWAp3ACW7wFFpwwkQsnSsEUkRQ%5f%5f&Key-Pair-Id=K2RKIY3YYBD5LB",
		Latitude:   58.88745521487193,
		Longitude:  5.775742868177744,
	},}

package knowledge

// loadDefaultCorpus fills the searcher with the built-in convention,
// port and customs passages.
func (s *StaticSearcher) loadDefaultCorpus() {
	s.corpus = []corpusEntry{
		// IMO conventions
		{
			id:         "KB-SOLAS-I",
			collection: CollectionIMOConventions,
			content:    "SOLAS Chapter I requires every ship to be surveyed and to carry valid safety certificates issued by the flag Administration. Certificates must be available on board for inspection and renewed before the end of their period of validity.",
			metadata: map[string]string{
				MetaConvention:    "SOLAS",
				MetaChapterTitle:  "Chapter I - General Provisions, Surveys and Certificates",
				MetaApplicability: "All ships on international voyages",
			},
		},
		{
			id:         "KB-SOLAS-IX",
			collection: CollectionIMOConventions,
			content:    "SOLAS Chapter IX makes the ISM Code mandatory. The company must hold a Document of Compliance and each vessel a Safety Management Certificate, both subject to periodic verification audits.",
			metadata: map[string]string{
				MetaConvention:    "SOLAS",
				MetaChapterTitle:  "Chapter IX - Management for the Safe Operation of Ships",
				MetaApplicability: "Companies and their ships",
			},
		},
		{
			id:         "KB-SOLAS-XI2",
			collection: CollectionIMOConventions,
			content:    "SOLAS Chapter XI-2 and the ISPS Code require an approved Ship Security Plan and a valid International Ship Security Certificate. A Continuous Synopsis Record must be maintained on board.",
			metadata: map[string]string{
				MetaConvention:    "SOLAS",
				MetaChapterTitle:  "Chapter XI-2 - Special Measures to Enhance Maritime Security",
				MetaApplicability: "Ships on international voyages",
			},
		},
		{
			id:         "KB-SOLAS-V",
			collection: CollectionIMOConventions,
			content:    "SOLAS Chapter V covers safety of navigation. Ships must carry up-to-date nautical charts and publications, a voyage plan for the intended passage, and operate AIS where fitted. A Minimum Safe Manning Document states the required crew complement.",
			metadata: map[string]string{
				MetaConvention:    "SOLAS",
				MetaChapterTitle:  "Chapter V - Safety of Navigation",
				MetaApplicability: "All ships",
			},
		},
		{
			id:         "KB-MARPOL-I",
			collection: CollectionIMOConventions,
			content:    "MARPOL Annex I regulates the discharge of oil. Ships of 400 GT and above must carry an International Oil Pollution Prevention Certificate and maintain an Oil Record Book covering all bunkering and discharge operations.",
			metadata: map[string]string{
				MetaConvention:    "MARPOL",
				MetaChapterTitle:  "Annex I - Prevention of Pollution by Oil",
				MetaApplicability: "Oil tankers and ships of 400 GT and above",
			},
		},
		{
			id:         "KB-MARPOL-VI",
			collection: CollectionIMOConventions,
			content:    "MARPOL Annex VI limits sulphur oxide emissions. The global fuel sulphur limit is 0.50% and 0.10% inside emission control areas. Ships carry an International Air Pollution Prevention Certificate and bunker delivery notes documenting fuel quality.",
			metadata: map[string]string{
				MetaConvention:    "MARPOL",
				MetaChapterTitle:  "Annex VI - Prevention of Air Pollution from Ships",
				MetaApplicability: "All ships of 400 GT and above",
			},
		},
		{
			id:         "KB-LOADLINE",
			collection: CollectionIMOConventions,
			content:    "The International Convention on Load Lines requires assignment of freeboard and a valid International Load Line Certificate. Load line marks must correspond to the certificate and seasonal zones must be observed.",
			metadata: map[string]string{
				MetaConvention:    "Load Line Convention",
				MetaChapterTitle:  "International Convention on Load Lines, 1966",
				MetaApplicability: "Ships on international voyages",
			},
		},
		{
			id:         "KB-MLC",
			collection: CollectionIMOConventions,
			content:    "The Maritime Labour Convention 2006 sets minimum standards for seafarer employment. Ships of 500 GT and above on international voyages carry a Maritime Labour Certificate and a Declaration of Maritime Labour Compliance.",
			metadata: map[string]string{
				MetaConvention:    "MLC 2006",
				MetaChapterTitle:  "Maritime Labour Convention, 2006",
				MetaApplicability: "Ships of 500 GT and above on international voyages",
			},
		},
		{
			id:         "KB-BWM",
			collection: CollectionIMOConventions,
			content:    "The Ballast Water Management Convention requires an approved Ballast Water Management Plan, a Ballast Water Record Book and an International Ballast Water Management Certificate for ships of 400 GT and above.",
			metadata: map[string]string{
				MetaConvention:    "BWM Convention",
				MetaChapterTitle:  "International Convention for the Control and Management of Ships' Ballast Water and Sediments",
				MetaApplicability: "Ships of 400 GT and above in international trade",
			},
		},
		{
			id:         "KB-TONNAGE",
			collection: CollectionIMOConventions,
			content:    "The International Convention on Tonnage Measurement of Ships 1969 governs gross and net tonnage. Every ship carries an International Tonnage Certificate (1969) issued after measurement by the Administration.",
			metadata: map[string]string{
				MetaConvention:    "Tonnage Convention",
				MetaChapterTitle:  "International Convention on Tonnage Measurement of Ships, 1969",
				MetaApplicability: "Ships of 24 metres in length and over",
			},
		},
		{
			id:         "KB-STCW",
			collection: CollectionIMOConventions,
			content:    "The STCW Convention sets certification standards for masters, officers and watch personnel. Certificates of competency and endorsements must be carried in original form and match the vessel's trading area and equipment.",
			metadata: map[string]string{
				MetaConvention:    "STCW",
				MetaChapterTitle:  "Standards of Training, Certification and Watchkeeping for Seafarers",
				MetaApplicability: "Masters, officers and ratings on seagoing ships",
			},
		},

		// Port regulations
		{
			id:         "KB-SGSIN-MARINET",
			collection: CollectionPortRegulations,
			content:    "Port SGSIN: vessels must submit pre-arrival notification to the Maritime and Port Authority of Singapore via the MARINET digital system at least 24 hours before arrival. Late notification may delay berth allocation.",
			metadata: map[string]string{
				MetaSource:          "MPA Singapore",
				MetaRequirementName: "MARINET Pre-Arrival Notification",
				MetaRequirementType: "MANDATORY",
				MetaPort:            "SGSIN",
			},
		},
		{
			id:         "KB-SGSIN-SCRUBBER",
			collection: CollectionPortRegulations,
			content:    "Port SGSIN: discharge of wash water from open-loop exhaust gas scrubbers is prohibited within Singapore port limits. Vessels fitted with open-loop systems must switch to compliant fuel before entry.",
			metadata: map[string]string{
				MetaSource:          "MPA Singapore",
				MetaRequirementName: "Open-Loop Scrubber Discharge Ban",
				MetaRequirementType: "MANDATORY",
				MetaPort:            "SGSIN",
			},
		},
		{
			id:         "KB-NLRTM-REPORTING",
			collection: CollectionPortRegulations,
			content:    "Port NLRTM: arrivals at Rotterdam must be reported through the Port Community System. Dangerous goods require notification before entry and the port falls inside the North Sea emission control area.",
			metadata: map[string]string{
				MetaSource:          "Port of Rotterdam Authority",
				MetaRequirementName: "Port Community System Reporting",
				MetaRequirementType: "MANDATORY",
				MetaPort:            "NLRTM",
			},
		},
		{
			id:         "KB-DEHAM-SCRUBBER",
			collection: CollectionPortRegulations,
			content:    "Port DEHAM: Hamburg prohibits open-loop scrubber wash water discharge in the port area and the Elbe. The port lies within the North Sea emission control area, so 0.10% sulphur fuel applies.",
			metadata: map[string]string{
				MetaSource:          "Hamburg Port Authority",
				MetaRequirementName: "Scrubber Discharge Restriction",
				MetaRequirementType: "MANDATORY",
				MetaPort:            "DEHAM",
			},
		},
		{
			id:         "KB-USLAX-CARB",
			collection: CollectionPortRegulations,
			content:    "Port USLAX: ocean-going vessels at berth in Los Angeles must comply with the California At-Berth Regulation, using shore power or an approved emission control strategy. USCG electronic Notice of Arrival is due 96 hours out.",
			metadata: map[string]string{
				MetaSource:          "California Air Resources Board",
				MetaRequirementName: "At-Berth Emissions Regulation",
				MetaRequirementType: "MANDATORY",
				MetaPort:            "USLAX",
			},
		},
		{
			id:         "KB-USNYC-NOA",
			collection: CollectionPortRegulations,
			content:    "Port USNYC: vessels arriving New York must file the USCG electronic Notice of Arrival (eNOAD) 96 hours before arrival and hold a valid Certificate of Financial Responsibility for oil pollution liability.",
			metadata: map[string]string{
				MetaSource:          "USCG Sector New York",
				MetaRequirementName: "Notice of Arrival Filing",
				MetaRequirementType: "MANDATORY",
				MetaPort:            "USNYC",
			},
		},
		{
			id:         "KB-CNSHA-MSA",
			collection: CollectionPortRegulations,
			content:    "Port CNSHA: Shanghai arrivals report to the local Maritime Safety Administration before entry. China's domestic emission control area applies a 0.50% sulphur limit alongside berth-side restrictions on scrubber discharge.",
			metadata: map[string]string{
				MetaSource:          "Shanghai MSA",
				MetaRequirementName: "MSA Arrival Reporting",
				MetaRequirementType: "MANDATORY",
				MetaPort:            "CNSHA",
			},
		},
		{
			id:         "KB-HKHKG-PREARR",
			collection: CollectionPortRegulations,
			content:    "Port HKHKG: the Hong Kong Marine Department requires pre-arrival notification and a general declaration on arrival. Ocean-going vessels must burn compliant low-sulphur fuel while at berth.",
			metadata: map[string]string{
				MetaSource:          "Hong Kong Marine Department",
				MetaRequirementName: "Pre-Arrival Notification",
				MetaRequirementType: "MANDATORY",
				MetaPort:            "HKHKG",
			},
		},

		// Customs documentation
		{
			id:         "KB-FAL-FORMS",
			collection: CollectionCustomsDocs,
			content:    "The IMO FAL Convention standardises arrival documentation. Ports commonly require FAL Form 1 General Declaration, Form 2 Cargo Declaration, Form 3 Ship's Stores Declaration and Form 5 Crew List before or on arrival.",
			metadata: map[string]string{
				MetaSource:          "IMO FAL Convention",
				MetaRequirementName: "FAL Forms 1-7",
				MetaRequirementType: "MANDATORY",
			},
		},
		{
			id:         "KB-US-CBP",
			collection: CollectionCustomsDocs,
			content:    "United States ports require CBP Form 1302 Cargo Declaration and CBP Form 3171 for vessel entry. Advance cargo information must be transmitted under the 24-hour rule for containerised cargo.",
			metadata: map[string]string{
				MetaSource:          "US Customs and Border Protection",
				MetaRequirementName: "CBP Entry Documentation",
				MetaRequirementType: "MANDATORY",
				MetaPort:            "USNYC",
			},
		},
		{
			id:         "KB-EU-ENS",
			collection: CollectionCustomsDocs,
			content:    "Cargo destined for EU ports requires an Entry Summary Declaration (ENS) lodged in the Import Control System before arrival. EU ports also require advance waste delivery notification under Directive (EU) 2019/883.",
			metadata: map[string]string{
				MetaSource:          "EU Customs Code",
				MetaRequirementName: "Entry Summary Declaration",
				MetaRequirementType: "MANDATORY",
				MetaPort:            "NLRTM",
			},
		},
		{
			id:         "KB-SG-CUSTOMS",
			collection: CollectionCustomsDocs,
			content:    "Port SGSIN: Singapore Customs requires an inward cargo manifest within 24 hours of arrival. Ship's stores and crew declarations are lodged electronically together with the MARINET arrival notice.",
			metadata: map[string]string{
				MetaSource:          "Singapore Customs",
				MetaRequirementName: "Inward Cargo Manifest",
				MetaRequirementType: "MANDATORY",
				MetaPort:            "SGSIN",
			},
		},
	}
}

package rubric

// Default returns the built-in three-domain rubric, matching the published
// RCGP CSA marking framework. Deployments can swap it for a newer revision via
// RUBRIC_PATH without touching code.
func Default() *Rubric {
	return &Rubric{
		Version: "2024.1",
		Domains: []Domain{
			{
				ID:   DomainDataGathering,
				Name: "Data Gathering, Technical and Assessment Skills",
				Anchors: map[string][]string{
					BandClearPass: {
						"Gathers information in a systematic way, targeted to the presenting complaint",
						"Elicits the patient's ideas, concerns and expectations early in the consultation",
						"Asks about red flag symptoms relevant to the presentation",
						"Takes an appropriately focused history of relevant past medical, drug and social factors",
					},
					BandMarginalPass: {
						"Obtains most of the relevant information but the approach is unsystematic",
						"Explores the patient's perspective only superficially or late",
						"Covers some but not all relevant red flags",
					},
					BandClearFail: {
						"Fails to gather sufficient information to support a safe assessment",
						"Makes no attempt to explore the patient's ideas, concerns or expectations",
						"Ignores significant cues offered by the patient",
					},
				},
			},
			{
				ID:   DomainClinicalManagement,
				Name: "Clinical Management Skills",
				Anchors: map[string][]string{
					BandClearPass: {
						"Offers an appropriate, evidence-based management plan for the likely diagnosis",
						"Shares management options and involves the patient in the decision",
						"Provides clear safety-netting advice and specific follow-up arrangements",
						"Prescribes and refers appropriately for the clinical context",
					},
					BandMarginalPass: {
						"Management plan is broadly appropriate but incomplete or poorly prioritised",
						"Safety-netting is vague or generic rather than tailored to the condition",
						"Follow-up arrangements are mentioned but not made concrete",
					},
					BandClearFail: {
						"Proposes a management plan that is unsafe or clearly inappropriate",
						"Offers no safety-netting advice",
						"Does not formulate any plan or defers every decision without justification",
					},
				},
			},
			{
				ID:   DomainInterpersonalSkills,
				Name: "Interpersonal Skills",
				Anchors: map[string][]string{
					BandClearPass: {
						"Listens actively and responds to verbal and non-verbal cues",
						"Uses clear language free of unexplained medical jargon",
						"Shows empathy and acknowledges the impact of the problem on the patient's life",
						"Checks the patient's understanding and invites questions",
					},
					BandMarginalPass: {
						"Communication is adequate but consultation feels doctor-centred",
						"Occasional unexplained jargon or interruptions",
						"Empathy is formulaic rather than responsive to the individual patient",
					},
					BandClearFail: {
						"Dismisses or talks over the patient",
						"Uses language the patient cannot follow and does not check understanding",
						"Shows no warmth or interest in the patient's perspective",
					},
				},
			},
		},
	}
}

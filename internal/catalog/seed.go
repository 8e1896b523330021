package catalog

func init() {
	reg = buildRegistry(seedCertifications())
}

// seedCertifications returns the supported certification catalog.
// Domains and weights follow the official Microsoft exam outlines.
func seedCertifications() []Certification {
	return []Certification{
		{
			ID:          "AZ-900",
			Name:        "Microsoft Azure Fundamentals",
			Provider:    "Microsoft",
			Description: "Foundational knowledge of cloud concepts and Azure services",
			Domains: []Domain{
				{
					Name:       "Cloud Concepts",
					ExamWeight: "25-30%",
					Focus:      "Cloud computing benefits, service models (IaaS, PaaS, SaaS), deployment models, and the shared responsibility model",
					KeyTerms: []string{
						"high availability", "scalability", "elasticity", "reliability",
						"IaaS", "PaaS", "SaaS", "public cloud", "private cloud",
						"hybrid cloud", "shared responsibility", "CapEx", "OpEx",
						"consumption-based model",
					},
					ScenarioHints: []string{
						"A company deciding between capital and operational expenditure",
						"Choosing a service model for a workload with limited ops staff",
						"Picking a deployment model for a regulated industry",
					},
				},
				{
					Name:       "Azure Architecture and Services",
					ExamWeight: "35-40%",
					Focus:      "Core architectural components, compute, networking, and storage services",
					KeyTerms: []string{
						"region", "availability zone", "resource group", "subscription",
						"virtual machine", "Azure App Service", "Azure Functions", "AKS",
						"virtual network", "VPN gateway", "ExpressRoute", "blob storage",
						"Azure Files", "storage tiers",
					},
					ScenarioHints: []string{
						"Designing for zone-level failure of a customer-facing app",
						"Selecting a compute service for an event-driven workload",
						"Moving rarely-accessed data to a cheaper storage tier",
					},
				},
				{
					Name:       "Azure Management and Governance",
					ExamWeight: "30-35%",
					Focus:      "Cost management, governance, deployment tooling, and monitoring",
					KeyTerms: []string{
						"Azure Policy", "resource lock", "Microsoft Purview", "Azure Advisor",
						"Azure Monitor", "Log Analytics", "ARM template", "Azure Arc",
						"cost management", "tags", "service health",
					},
					ScenarioHints: []string{
						"Preventing accidental deletion of production resources",
						"Enforcing resource deployment to approved regions only",
						"Tracking spend across several departments",
					},
				},
			},
		},
		{
			ID:          "AI-900",
			Name:        "Microsoft Azure AI Fundamentals",
			Provider:    "Microsoft",
			Description: "Foundational knowledge of machine learning and AI workloads on Azure",
			Domains: []Domain{
				{
					Name:       "AI Workloads and Considerations",
					ExamWeight: "15-20%",
					Focus:      "Common AI workload types and responsible AI principles",
					KeyTerms: []string{
						"computer vision", "natural language processing", "anomaly detection",
						"knowledge mining", "responsible AI", "fairness", "transparency",
						"accountability", "content moderation",
					},
					ScenarioHints: []string{
						"Identifying which AI workload fits a business problem",
						"Applying responsible AI principles to a hiring model",
					},
				},
				{
					Name:       "Fundamental Principles of Machine Learning",
					ExamWeight: "20-25%",
					Focus:      "Core ML concepts and Azure Machine Learning capabilities",
					KeyTerms: []string{
						"regression", "classification", "clustering", "training data",
						"validation data", "feature", "label", "Azure Machine Learning",
						"automated ML",
					},
					ScenarioHints: []string{
						"Choosing between regression and classification for a prediction task",
						"Splitting data for training and validation",
					},
				},
				{
					Name:       "Computer Vision Workloads",
					ExamWeight: "15-20%",
					Focus:      "Image classification, object detection, OCR, and facial analysis on Azure",
					KeyTerms: []string{
						"image classification", "object detection", "OCR",
						"Azure AI Vision", "facial detection", "facial analysis",
					},
					ScenarioHints: []string{
						"Reading text from scanned invoices",
						"Counting products on a shelf from photos",
					},
				},
				{
					Name:       "Natural Language Processing Workloads",
					ExamWeight: "15-20%",
					Focus:      "Text analytics, speech, translation, and language understanding",
					KeyTerms: []string{
						"sentiment analysis", "key phrase extraction", "entity recognition",
						"Azure AI Language", "speech to text", "text to speech", "translation",
					},
					ScenarioHints: []string{
						"Gauging customer sentiment from support tickets",
						"Building a voice interface for a kiosk",
					},
				},
				{
					Name:       "Generative AI Workloads",
					ExamWeight: "15-20%",
					Focus:      "Generative AI features and Azure OpenAI Service capabilities",
					KeyTerms: []string{
						"large language model", "Azure OpenAI", "prompt", "completion",
						"copilot", "grounding", "token",
					},
					ScenarioHints: []string{
						"Summarizing internal documents with an LLM",
						"Adding a copilot experience to a line-of-business app",
					},
				},
			},
		},
		{
			ID:          "SC-900",
			Name:        "Microsoft Security, Compliance, and Identity Fundamentals",
			Provider:    "Microsoft",
			Description: "Foundational knowledge of security, compliance, and identity across Microsoft cloud services",
			Domains: []Domain{
				{
					Name:       "Security, Compliance, and Identity Concepts",
					ExamWeight: "10-15%",
					Focus:      "Zero Trust, defense in depth, and identity as the security perimeter",
					KeyTerms: []string{
						"Zero Trust", "defense in depth", "encryption", "hashing",
						"authentication", "authorization", "identity provider", "federation",
					},
					ScenarioHints: []string{
						"Applying Zero Trust to a remote workforce",
						"Explaining authentication versus authorization to a new admin",
					},
				},
				{
					Name:       "Microsoft Entra Capabilities",
					ExamWeight: "25-30%",
					Focus:      "Entra ID identity types, authentication methods, and access management",
					KeyTerms: []string{
						"Microsoft Entra ID", "conditional access", "multifactor authentication",
						"single sign-on", "managed identity", "guest access", "Privileged Identity Management",
						"Identity Protection",
					},
					ScenarioHints: []string{
						"Requiring MFA only for sign-ins from unfamiliar locations",
						"Granting a contractor time-limited admin rights",
					},
				},
				{
					Name:       "Microsoft Security Solutions",
					ExamWeight: "35-40%",
					Focus:      "Defender XDR, Sentinel, and cloud security posture management",
					KeyTerms: []string{
						"Microsoft Defender", "Microsoft Sentinel", "SIEM", "SOAR",
						"secure score", "Defender for Cloud", "threat intelligence",
						"network security group", "Azure Firewall", "DDoS protection",
					},
					ScenarioHints: []string{
						"Correlating alerts across email and endpoints after a phishing wave",
						"Restricting inbound traffic to a virtual machine",
					},
				},
				{
					Name:       "Microsoft Compliance Solutions",
					ExamWeight: "20-25%",
					Focus:      "Purview compliance portal, information protection, and data lifecycle management",
					KeyTerms: []string{
						"Microsoft Purview", "compliance manager", "sensitivity label",
						"retention policy", "data loss prevention", "eDiscovery",
						"insider risk management",
					},
					ScenarioHints: []string{
						"Preventing credit card numbers from leaving the tenant in email",
						"Placing a legal hold on a departing employee's mailbox",
					},
				},
			},
		},
		{
			ID:          "DP-900",
			Name:        "Microsoft Azure Data Fundamentals",
			Provider:    "Microsoft",
			Description: "Foundational knowledge of core data concepts and Azure data services",
			Domains: []Domain{
				{
					Name:       "Core Data Concepts",
					ExamWeight: "25-30%",
					Focus:      "Data representations, workloads, and data professional roles",
					KeyTerms: []string{
						"structured data", "semi-structured data", "unstructured data",
						"transactional workload", "analytical workload", "batch processing",
						"streaming", "data engineer", "database administrator",
					},
					ScenarioHints: []string{
						"Classifying JSON telemetry versus relational order data",
						"Choosing batch versus streaming for sensor ingestion",
					},
				},
				{
					Name:       "Relational Data on Azure",
					ExamWeight: "20-25%",
					Focus:      "Relational concepts and Azure SQL service options",
					KeyTerms: []string{
						"normalization", "primary key", "index", "view", "stored procedure",
						"Azure SQL Database", "SQL Managed Instance", "SQL Server on Azure VMs",
						"PostgreSQL", "MySQL",
					},
					ScenarioHints: []string{
						"Migrating an on-premises SQL Server with minimal code changes",
						"Choosing a PaaS database for a new SaaS product",
					},
				},
				{
					Name:       "Non-relational Data on Azure",
					ExamWeight: "15-20%",
					Focus:      "Azure Storage options and Cosmos DB APIs",
					KeyTerms: []string{
						"blob storage", "Azure Files", "table storage", "Cosmos DB",
						"NoSQL", "document database", "graph database", "key-value store",
					},
					ScenarioHints: []string{
						"Storing product catalogs with flexible schemas",
						"Serving session state with millisecond reads worldwide",
					},
				},
				{
					Name:       "Data Analytics on Azure",
					ExamWeight: "25-30%",
					Focus:      "Large-scale analytics, real-time analytics, and data visualization",
					KeyTerms: []string{
						"Azure Synapse Analytics", "Azure Databricks", "data warehouse",
						"data lake", "ETL", "Power BI", "Microsoft Fabric", "Stream Analytics",
					},
					ScenarioHints: []string{
						"Building a dashboard over a central data warehouse",
						"Analyzing clickstream data in near real time",
					},
				},
			},
		},
	}
}

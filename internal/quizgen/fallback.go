package quizgen

// fallbackBanks holds pre-written questions per certification, served when
// generation fails. ID, Domain, CertificationID, and GeneratedAt are
// stamped at serve time.
var fallbackBanks = map[string][]Question{
	"AZ-900": {
		{
			Text: "A startup wants to avoid buying servers and instead pay monthly only for the compute it actually uses. Which cloud expenditure model does this describe?",
			Options: []string{
				"Capital expenditure (CapEx)",
				"Operational expenditure (OpEx)",
				"Fixed-cost licensing",
				"Reserved hardware leasing",
			},
			Correct:     1,
			Explanation: "Pay-as-you-go consumption is operational expenditure: an ongoing cost with no upfront asset purchase. CapEx is the upfront purchase of infrastructure; fixed licensing and hardware leasing both commit spend regardless of usage.",
		},
		{
			Text: "Your company must keep an application available even if an entire Azure datacenter fails within a region. What should you deploy across?",
			Options: []string{
				"Multiple resource groups",
				"Multiple availability zones",
				"Multiple subscriptions",
				"Multiple management groups",
			},
			Correct:     1,
			Explanation: "Availability zones are physically separate datacenters within a region, protecting against datacenter-level failure. Resource groups, subscriptions, and management groups are organizational boundaries, not physical ones.",
		},
		{
			Text: "A team needs to host a web app without managing the underlying operating system or runtime patching. Which service model fits best?",
			Options: []string{
				"Infrastructure as a Service (IaaS)",
				"Platform as a Service (PaaS)",
				"An on-premises virtual machine",
				"A bare-metal dedicated host",
			},
			Correct:     1,
			Explanation: "PaaS (for example Azure App Service) manages the OS and runtime so the team only deploys code. IaaS and the other options leave OS maintenance with the customer.",
		},
		{
			Text: "Finance wants to stop engineers from accidentally deleting a production database server. Which governance feature addresses this directly?",
			Options: []string{
				"A resource lock",
				"A billing alert",
				"An Azure Advisor recommendation",
				"A resource tag",
			},
			Correct:     0,
			Explanation: "A delete lock prevents deletion until the lock is removed, regardless of role. Billing alerts, Advisor, and tags inform or organize but do not block deletion.",
		},
		{
			Text: "Which tool gives you a single view of spending across several departments' Azure subscriptions?",
			Options: []string{
				"Microsoft Cost Management",
				"Azure Service Health",
				"Azure Monitor",
				"Microsoft Entra ID",
			},
			Correct:     0,
			Explanation: "Cost Management analyzes and budgets spend across subscriptions. Service Health reports outages, Monitor collects telemetry, and Entra ID handles identity.",
		},
	},
	"AI-900": {
		{
			Text: "A retailer wants to flag unusual spikes in transaction volume that may indicate fraud. Which AI workload type is this?",
			Options: []string{
				"Anomaly detection",
				"Computer vision",
				"Knowledge mining",
				"Text to speech",
			},
			Correct:     0,
			Explanation: "Detecting unusual patterns in a data stream is anomaly detection. Vision handles images, knowledge mining extracts information from content stores, and text to speech synthesizes audio.",
		},
		{
			Text: "You need to predict a house's sale price from its size, age, and location. Which machine learning task is this?",
			Options: []string{
				"Classification",
				"Clustering",
				"Regression",
				"Translation",
			},
			Correct:     2,
			Explanation: "Predicting a continuous numeric value is regression. Classification predicts categories, clustering groups unlabeled data, and translation is an NLP task.",
		},
		{
			Text: "A bank's loan-approval model must be explainable to rejected applicants. Which responsible AI principle is most directly involved?",
			Options: []string{
				"Transparency",
				"Elasticity",
				"High availability",
				"Data residency",
			},
			Correct:     0,
			Explanation: "Transparency means people can understand how an AI system makes decisions. The other options are infrastructure concerns, not responsible AI principles.",
		},
		{
			Text: "Which Azure service lets you summarize internal documents using a large language model?",
			Options: []string{
				"Azure OpenAI Service",
				"Azure Stream Analytics",
				"Azure Files",
				"Azure DDoS Protection",
			},
			Correct:     0,
			Explanation: "Azure OpenAI Service exposes large language models for tasks like summarization. The others handle streaming analytics, file shares, and network protection.",
		},
	},
	"SC-900": {
		{
			Text: "Your security team wants every access request verified explicitly, regardless of network location. Which security model is this?",
			Options: []string{
				"Perimeter-based security",
				"Zero Trust",
				"Defense in depth",
				"Shared responsibility",
			},
			Correct:     1,
			Explanation: "Zero Trust assumes breach and verifies every request explicitly. Perimeter security trusts the internal network, defense in depth layers controls, and shared responsibility splits duties with the cloud provider.",
		},
		{
			Text: "You must require multifactor authentication only when users sign in from outside the corporate network. Which Microsoft Entra feature does this?",
			Options: []string{
				"Conditional Access",
				"Self-service password reset",
				"Guest access",
				"Entra ID Free single sign-on",
			},
			Correct:     0,
			Explanation: "Conditional Access applies policies like requiring MFA based on signals such as location. The other features do not make risk-based access decisions.",
		},
		{
			Text: "The SOC wants to correlate alerts from email, endpoints, and identity into one investigation with automated responses. Which product category fits?",
			Options: []string{
				"A SIEM/SOAR solution such as Microsoft Sentinel",
				"A file-share service such as Azure Files",
				"A cost tool such as Microsoft Cost Management",
				"A DNS service such as Azure DNS",
			},
			Correct:     0,
			Explanation: "Sentinel is Microsoft's cloud-native SIEM with SOAR automation, built to correlate signals across sources. The other services are unrelated to security operations.",
		},
		{
			Text: "Compliance wants to stop credit card numbers from being emailed outside the organization. Which Microsoft Purview capability applies?",
			Options: []string{
				"Data loss prevention",
				"eDiscovery",
				"Compliance Manager",
				"Insider risk management",
			},
			Correct:     0,
			Explanation: "DLP policies detect and block sensitive information like card numbers in transit. eDiscovery finds content for legal cases, Compliance Manager tracks posture, and insider risk management watches user behavior.",
		},
	},
	"DP-900": {
		{
			Text: "An IoT platform receives JSON telemetry whose fields vary by device model. How is this data best described?",
			Options: []string{
				"Structured data",
				"Semi-structured data",
				"Unstructured data",
				"Relational data",
			},
			Correct:     1,
			Explanation: "JSON with a flexible, self-describing shape is semi-structured. Structured/relational data has a fixed schema, and unstructured data (images, video) has no inherent structure.",
		},
		{
			Text: "A company wants to migrate an on-premises SQL Server instance to Azure with near-complete feature compatibility and minimal code changes. Which option fits best?",
			Options: []string{
				"Azure SQL Managed Instance",
				"Azure Table Storage",
				"Azure Cosmos DB for NoSQL",
				"Azure Blob Storage",
			},
			Correct:     0,
			Explanation: "SQL Managed Instance offers near-full SQL Server compatibility as a managed service. Table Storage, Cosmos DB, and Blob Storage are not relational SQL Server targets.",
		},
		{
			Text: "Which service is designed for querying petabyte-scale data warehouses and integrating big data pipelines in Azure?",
			Options: []string{
				"Azure Synapse Analytics",
				"Azure Queue Storage",
				"Azure Key Vault",
				"Azure App Service",
			},
			Correct:     0,
			Explanation: "Synapse Analytics combines enterprise data warehousing with big data analytics. Queues, Key Vault, and App Service serve messaging, secrets, and web hosting.",
		},
		{
			Text: "A product team needs a globally distributed database with millisecond reads and a flexible document schema. Which service fits?",
			Options: []string{
				"Azure Cosmos DB",
				"Azure SQL Database",
				"Azure Data Lake Storage",
				"Power BI",
			},
			Correct:     0,
			Explanation: "Cosmos DB is a globally distributed, multi-model NoSQL database with low-latency reads. SQL Database is relational, Data Lake is analytics storage, and Power BI is visualization.",
		},
	},
}

// genericBank is the last-resort bank for certifications without a curated
// set.
var genericBank = []Question{
	{
		Text: "Which of the following is a core benefit of cloud computing compared to traditional on-premises infrastructure?",
		Options: []string{
			"Unlimited free compute capacity",
			"Elastic scaling of resources with demand",
			"No need for any security controls",
			"Guaranteed zero downtime",
		},
		Correct:     1,
		Explanation: "Elasticity — scaling resources up and down with demand — is a defining cloud benefit. Cloud capacity is metered rather than free, security remains a shared responsibility, and no provider guarantees zero downtime.",
	},
}

package gate

// offTopicStarters mark messages that open a clearly non-certification
// conversation. Checked before domainKeywords.
var offTopicStarters = []string{
	"weather",
	"forecast",
	"sports",
	"football",
	"basketball",
	"cricket",
	"recipe",
	"cooking",
	"restaurant",
	"movie",
	"netflix",
	"song",
	"music",
	"celebrity",
	"gossip",
	"horoscope",
	"lottery",
	"dating",
	"joke",
	"stock tip",
	"vacation",
	"holiday plans",
}

// domainKeywords anchor a conversation in certification-study mode. Cloud
// provider names, service names, exam codes, and general cloud vocabulary.
var domainKeywords = []string{
	// Exam codes
	"az-900", "ai-900", "sc-900", "dp-900",
	"az900", "ai900", "sc900", "dp900",
	// Providers and platforms
	"azure", "aws", "amazon web services", "gcp", "google cloud",
	// Azure services and concepts
	"virtual machine", "app service", "azure function", "aks",
	"kubernetes", "virtual network", "vnet", "blob storage",
	"cosmos db", "entra", "active directory", "azure monitor",
	"azure policy", "defender", "sentinel", "purview", "synapse",
	"databricks", "power bi",
	// AWS terms that show up in comparisons
	"ec2", "s3", "lambda",
	// General cloud vocabulary
	"cloud", "iaas", "paas", "saas", "certification", "certif",
	"exam", "availability zone", "region", "subscription",
	"resource group", "scalability", "elasticity", "high availability",
	"shared responsibility", "zero trust", "multifactor",
	"conditional access", "data warehouse", "data lake", "nosql",
	"machine learning", "cognitive", "openai",
}

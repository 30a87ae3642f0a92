package content

import "math/rand"

// DefaultTopic is used when a trigger arrives with an empty topic.
const DefaultTopic = "ATS resume tips"

type Topic struct {
	Title   string
	Cluster string
}

// Shortlist is the static pool the cron orchestrator picks from.
var Shortlist = []Topic{
	{"ATS resume tips for Indian job seekers", "resume-tips"},
	{"resume summary examples for freshers", "resume-tips"},
	{"how to beat the ATS in 2026", "resume-tips"},
	{"resume keywords for software engineers", "resume-tips"},
	{"naukri profile optimization guide", "job-search"},
	{"linkedin headline examples for job seekers", "linkedin"},
	{"linkedin profile tips for Indian professionals", "linkedin"},
	{"highest paying IT jobs in India", "salary"},
	{"software engineer salary in Bangalore", "salary"},
	{"how to negotiate salary in India", "salary"},
	{"best resume format for experienced professionals", "resume-tips"},
	{"career switch to data science in India", "job-search"},
	{"interview questions for freshers", "interviews"},
	{"how to explain a career gap in your resume", "resume-tips"},
	{"remote jobs in India for freshers", "job-search"},
}

// Pick returns a random topic/cluster pair from the shortlist.
func Pick() Topic {
	return Shortlist[rand.Intn(len(Shortlist))]
}

// PickForCluster prefers a topic from the given cluster, falling back to any.
func PickForCluster(cluster string) Topic {
	if cluster == "" {
		return Pick()
	}
	var pool []Topic
	for _, t := range Shortlist {
		if t.Cluster == cluster {
			pool = append(pool, t)
		}
	}
	if len(pool) == 0 {
		return Pick()
	}
	return pool[rand.Intn(len(pool))]
}

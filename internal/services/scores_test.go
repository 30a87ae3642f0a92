package services

import (
	"testing"

	"naukriedge/internal/models"
)

func TestATSScore_StrongResume(t *testing.T) {
	svc := NewScoreService()

	res := svc.ATSScore(models.ATSScoreRequest{
		Role: "Software Engineer",
		ResumeText: `Experience: built microservices in Golang and Python exposing a REST API,
deployed on AWS with Docker and CI/CD. Skills: Java, JavaScript, SQL, Git, Agile.
Education: B.Tech. Projects: various.`,
	})

	if res.Score < 75 {
		t.Fatalf("expected a strong score, got %d (%+v)", res.Score, res)
	}
	if res.Verdict != "strong" {
		t.Fatalf("unexpected verdict: %q", res.Verdict)
	}
	if len(res.MatchedKeywords) == 0 {
		t.Fatal("matched keywords must be reported")
	}
}

func TestATSScore_EmptyResume(t *testing.T) {
	svc := NewScoreService()

	res := svc.ATSScore(models.ATSScoreRequest{Role: "software engineer", ResumeText: ""})

	if res.Score != 0 {
		t.Fatalf("empty resume must score 0, got %d", res.Score)
	}
	if res.Verdict != "needs work" {
		t.Fatalf("unexpected verdict: %q", res.Verdict)
	}
	if len(res.MatchedKeywords) != 0 {
		t.Fatalf("nothing should match: %v", res.MatchedKeywords)
	}
	if len(res.Tips) == 0 {
		t.Fatal("tips must suggest improvements")
	}
}

func TestATSScore_UnknownRoleUsesGenericKeywords(t *testing.T) {
	svc := NewScoreService()

	res := svc.ATSScore(models.ATSScoreRequest{
		Role:       "astronaut",
		ResumeText: "strong communication and leadership, experience, education, skills, projects",
	})

	found := false
	for _, kw := range res.MatchedKeywords {
		if kw == "communication" {
			found = true
		}
	}
	if !found {
		t.Fatalf("generic keywords must apply for unknown roles: %v", res.MatchedKeywords)
	}
}

func TestATSScore_NeverExceeds100(t *testing.T) {
	svc := NewScoreService()

	res := svc.ATSScore(models.ATSScoreRequest{
		Role:       "sales",
		ResumeText: "crm salesforce pipeline quota prospecting negotiation b2b lead generation account management experience education skills projects",
	})
	if res.Score > 100 {
		t.Fatalf("score capped at 100, got %d", res.Score)
	}
}

func TestSalaryEstimate_CityAndExperienceAdjust(t *testing.T) {
	svc := NewScoreService()

	base := svc.SalaryEstimate(models.SalaryRequest{Role: "software engineer", City: "indore", YearsExperience: 0})
	blr := svc.SalaryEstimate(models.SalaryRequest{Role: "software engineer", City: "Bangalore", YearsExperience: 0})
	senior := svc.SalaryEstimate(models.SalaryRequest{Role: "software engineer", City: "indore", YearsExperience: 10})

	if blr.MinLPA <= base.MinLPA || blr.MaxLPA <= base.MaxLPA {
		t.Fatalf("metro multiplier must raise the band: base=%+v blr=%+v", base, blr)
	}
	if senior.MinLPA <= base.MinLPA {
		t.Fatalf("experience must raise the band: base=%+v senior=%+v", base, senior)
	}
	if base.Currency != "INR" {
		t.Fatalf("unexpected currency: %q", base.Currency)
	}
	if !(base.MinLPA < base.MedianLPA && base.MedianLPA < base.MaxLPA) {
		t.Fatalf("band must be ordered: %+v", base)
	}
}

func TestSalaryEstimate_ExperienceClamped(t *testing.T) {
	svc := NewScoreService()

	at15 := svc.SalaryEstimate(models.SalaryRequest{Role: "data analyst", YearsExperience: 15})
	at40 := svc.SalaryEstimate(models.SalaryRequest{Role: "data analyst", YearsExperience: 40})
	if at15.MaxLPA != at40.MaxLPA {
		t.Fatalf("experience factor must cap at 15 years: %v vs %v", at15.MaxLPA, at40.MaxLPA)
	}

	neg := svc.SalaryEstimate(models.SalaryRequest{Role: "data analyst", YearsExperience: -3})
	zero := svc.SalaryEstimate(models.SalaryRequest{Role: "data analyst", YearsExperience: 0})
	if neg.MinLPA != zero.MinLPA {
		t.Fatalf("negative experience must clamp to zero: %v vs %v", neg.MinLPA, zero.MinLPA)
	}
}

func TestSalaryEstimate_UnknownRoleGetsDefaultBand(t *testing.T) {
	svc := NewScoreService()

	res := svc.SalaryEstimate(models.SalaryRequest{Role: "astronaut", City: "mumbai", YearsExperience: 2})
	if res.MinLPA <= 0 || res.MaxLPA <= res.MinLPA {
		t.Fatalf("default band must still produce a sane range: %+v", res)
	}
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Reksit/Hack4.0/client/internal/types"
)

func TestSubmitAssessment_PathAndBody(t *testing.T) {
	t.Parallel()
	var got captured
	srv := recordingServer(&got, http.StatusOK, `{"id":"res1","assessmentId":"a1","score":2,"totalMarks":3}`)
	defer srv.Close()

	req := types.SubmitAssessmentRequest{Answers: []types.Answer{{QuestionIndex: 0, SelectedAnswer: 1}, {QuestionIndex: 1, SelectedAnswer: 0}}}
	res, err := SubmitAssessment(context.Background(), newRC(srv), "a1", req)
	if err != nil {
		t.Fatalf("SubmitAssessment: %v", err)
	}
	if res.Score != 2 || res.AssessmentID != "a1" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if got.method != http.MethodPost || got.path != "/assessments/a1/submit" {
		t.Fatalf("unexpected request %s %s", got.method, got.path)
	}
	var body types.SubmitAssessmentRequest
	if err := json.Unmarshal([]byte(got.body), &body); err != nil || len(body.Answers) != 2 || body.Answers[0].SelectedAnswer != 1 {
		t.Fatalf("unexpected body %q (%v)", got.body, err)
	}
}

func TestAssessmentGetters_Paths(t *testing.T) {
	t.Parallel()
	var got captured
	srv := recordingServer(&got, http.StatusOK, `[]`)
	defer srv.Close()
	rc := newRC(srv)
	ctx := context.Background()

	cases := []struct {
		name string
		call func() error
		path string
	}{
		{"by student", func() error { _, err := ListStudentAssessments(ctx, rc, "s1"); return err }, "/assessments/student/s1"},
		{"by professor", func() error { _, err := ListProfessorAssessments(ctx, rc, "p1"); return err }, "/assessments/professor/p1"},
		{"results", func() error { _, err := GetResults(ctx, rc, "a1"); return err }, "/assessments/a1/results"},
		{"results with students", func() error { _, err := GetResultsWithStudents(ctx, rc, "a1"); return err }, "/assessments/a1/results-with-students"},
		{"student results", func() error { _, err := GetStudentResults(ctx, rc, "s1"); return err }, "/assessments/results/student/s1"},
	}
	for _, c := range cases {
		if err := c.call(); err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got.method != http.MethodGet || got.path != c.path || got.body != "" {
			t.Fatalf("%s: got %s %s body=%q", c.name, got.method, got.path, got.body)
		}
	}
}

func TestGetAssessment_StatusAndSubmission(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/assessments/a1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.Assessment{ID: "a1", Title: "Go", Questions: []types.Question{{Question: "q", Options: []string{"x"}}}})
	})
	mux.HandleFunc("/assessments/a1/status", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.AssessmentStatus{Status: "ACTIVE", CanAttempt: true})
	})
	mux.HandleFunc("/assessments/a1/submission/s1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.SubmissionCheck{Submitted: true, Result: &types.AssessmentResult{Score: 5}})
	})
	srv := httptestServer(t, mux)
	rc := newRC(srv)
	ctx := context.Background()

	a, err := GetAssessment(ctx, rc, "a1")
	if err != nil || a.ID != "a1" || len(a.Questions) != 1 {
		t.Fatalf("GetAssessment: %+v %v", a, err)
	}
	st, err := GetAssessmentStatus(ctx, rc, "a1")
	if err != nil || st.Status != "ACTIVE" || !st.CanAttempt {
		t.Fatalf("GetAssessmentStatus: %+v %v", st, err)
	}
	chk, err := CheckSubmission(ctx, rc, "a1", "s1")
	if err != nil || !chk.Submitted || chk.Result == nil || chk.Result.Score != 5 {
		t.Fatalf("CheckSubmission: %+v %v", chk, err)
	}
}

func TestCreateAssessment_PostsToCollection(t *testing.T) {
	t.Parallel()
	var got captured
	srv := recordingServer(&got, http.StatusCreated, `{"id":"a7","title":"Go"}`)
	defer srv.Close()

	out, err := CreateAssessment(context.Background(), newRC(srv), types.CreateAssessmentRequest{
		Title:     "Go",
		Questions: []types.Question{{Question: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: 1}},
	})
	if err != nil {
		t.Fatalf("CreateAssessment: %v", err)
	}
	if out.ID != "a7" || got.method != http.MethodPost || got.path != "/assessments" {
		t.Fatalf("unexpected: %+v %s %s", out, got.method, got.path)
	}
}

func TestAssessments_DecodeErrors(t *testing.T) {
	t.Parallel()
	var got captured
	srv := recordingServer(&got, http.StatusOK, `{bad json`)
	defer srv.Close()
	if _, err := GetAssessment(context.Background(), newRC(srv), "a1"); err == nil {
		t.Fatal("expected decode error for GetAssessment")
	}
	if _, err := GetResults(context.Background(), newRC(srv), "a1"); err == nil {
		t.Fatal("expected decode error for GetResults")
	}
}

func TestAssessments_HTTPDoError(t *testing.T) {
	t.Parallel()
	rc := failingRC()
	if _, err := GetAssessment(context.Background(), rc, "a1"); err == nil {
		t.Fatal("expected Do error for GetAssessment")
	}
	if _, err := CheckSubmission(context.Background(), rc, "a1", "s1"); err == nil {
		t.Fatal("expected Do error for CheckSubmission")
	}
}

func TestAssessments_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := GetAssessment(ctx, failingRC(), "a1"); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAssessmentDecode_ZonelessTimestamps(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/assessments/a1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"a1","title":"Go","startTime":"2024-01-15T10:30:00","endTime":"2024-01-15T11:30:00Z","createdAt":null,"questions":[]}`))
	})
	mux.HandleFunc("/assessments/a1/results", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"r1","assessmentId":"a1","submittedAt":"2024-01-15T10:45:12.123456"}]`))
	})
	srv := httptestServer(t, mux)
	rc := newRC(srv)
	ctx := context.Background()

	a, err := GetAssessment(ctx, rc, "a1")
	if err != nil {
		t.Fatalf("GetAssessment: %v", err)
	}
	if want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC); !time.Time(a.StartTime).Equal(want) {
		t.Fatalf("startTime = %v, want %v", a.StartTime, want)
	}
	if want := time.Date(2024, 1, 15, 11, 30, 0, 0, time.UTC); !time.Time(a.EndTime).Equal(want) {
		t.Fatalf("endTime = %v, want %v", a.EndTime, want)
	}
	if a.CreatedAt != nil {
		t.Fatalf("createdAt = %v, want nil", a.CreatedAt)
	}

	results, err := GetResults(ctx, rc, "a1")
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %+v", results)
	}
	if want := time.Date(2024, 1, 15, 10, 45, 12, 123456000, time.UTC); !time.Time(results[0].SubmittedAt).Equal(want) {
		t.Fatalf("submittedAt = %v, want %v", results[0].SubmittedAt, want)
	}
}

func TestAssessmentEncode_OmitsMissingCreatedAt(t *testing.T) {
	b, err := json.Marshal(types.Assessment{ID: "a1"})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["createdAt"]; ok {
		t.Fatalf("createdAt encoded for zero value: %s", b)
	}
}

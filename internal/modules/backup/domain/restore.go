package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Scalar accepts a setting written as a string, number or boolean. Values
// that are falsy in the document (null, "", 0, false) decode to "".
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = Scalar(t)
	case bool:
		if t {
			*s = "true"
		} else {
			*s = ""
		}
	case json.Number:
		f, err := t.Float64()
		if err != nil || f == 0 {
			*s = ""
		} else {
			*s = Scalar(t.String())
		}
	default:
		return invalid("setting must be a string, number or boolean")
	}
	return nil
}

// FlexID accepts string ids and the numeric ids older exports carry.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*id = ""
	case string:
		*id = FlexID(strings.TrimSpace(t))
	case json.Number:
		if n, err := t.Int64(); err == nil {
			*id = FlexID(strconv.FormatInt(n, 10))
			return nil
		}
		f, err := t.Float64()
		if err != nil {
			return err
		}
		*id = FlexID(strconv.FormatFloat(f, 'f', -1, 64))
	default:
		return invalid("id must be a string or number")
	}
	return nil
}

type taskRecord struct {
	ID        FlexID `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type chapterRecord struct {
	ID    FlexID       `json:"id"`
	Name  string       `json:"name"`
	Tasks []taskRecord `json:"tasks"`
}

type subjectRecord struct {
	ID       FlexID          `json:"id"`
	Name     string          `json:"name"`
	Color    string          `json:"color"`
	Chapters []chapterRecord `json:"chapters"`
}

type sessionRecord struct {
	ID               FlexID    `json:"id"`
	Subject          string    `json:"subject"`
	Duration         int       `json:"duration"`
	Questions        int       `json:"questions"`
	CorrectQuestions int       `json:"correctQuestions"`
	Date             time.Time `json:"date"`
	Completed        bool      `json:"completed"`
}

type bookRecord struct {
	ID        FlexID    `json:"id"`
	Title     string    `json:"title"`
	Authors   []string  `json:"authors"`
	Thumbnail string    `json:"thumbnail"`
	AddedAt   time.Time `json:"addedAt"`
	Completed bool      `json:"completed"`
}

type incoming struct {
	Subjects             json.RawMessage `json:"subjects"`
	Sessions             json.RawMessage `json:"sessions"`
	Library              json.RawMessage `json:"library"`
	DailyGoal            Scalar          `json:"dailyGoal"`
	PrimaryColor         Scalar          `json:"primaryColor"`
	ColorMode            Scalar          `json:"colorMode"`
	BackgroundMode       Scalar          `json:"backgroundMode"`
	Volume               Scalar          `json:"volume"`
	NotificationsEnabled Scalar          `json:"notificationsEnabled"`
}

// Counts summarizes a parsed document.
type Counts struct {
	Subjects int
	Sessions int
	Books    int
}

// Parse validates a whole document before anything is written. subjects and
// sessions must be arrays, library must be an array when present, and every
// session must satisfy the recording invariants. Collections come back
// re-encoded with string ids; a missing library becomes an empty one.
func Parse(data []byte) (State, Counts, error) {
	var in incoming
	if err := json.Unmarshal(data, &in); err != nil {
		return State{}, Counts{}, invalid("decode document: %v", err)
	}
	if !isArray(in.Subjects) {
		return State{}, Counts{}, invalid("subjects is not a list")
	}
	if !isArray(in.Sessions) {
		return State{}, Counts{}, invalid("sessions is not a list")
	}
	if !isAbsent(in.Library) && !isArray(in.Library) {
		return State{}, Counts{}, invalid("library is not a list")
	}

	subjects, err := decodeSubjects(in.Subjects)
	if err != nil {
		return State{}, Counts{}, err
	}
	sessions, err := decodeSessions(in.Sessions)
	if err != nil {
		return State{}, Counts{}, err
	}
	books := []bookRecord{}
	if !isAbsent(in.Library) {
		if books, err = decodeBooks(in.Library); err != nil {
			return State{}, Counts{}, err
		}
	}

	state := State{
		DailyGoal:            string(in.DailyGoal),
		PrimaryColor:         string(in.PrimaryColor),
		ColorMode:            string(in.ColorMode),
		BackgroundMode:       string(in.BackgroundMode),
		Volume:               string(in.Volume),
		NotificationsEnabled: string(in.NotificationsEnabled),
	}
	if state.Subjects, err = encode(subjects); err != nil {
		return State{}, Counts{}, err
	}
	if state.Sessions, err = encode(sessions); err != nil {
		return State{}, Counts{}, err
	}
	if state.Library, err = encode(books); err != nil {
		return State{}, Counts{}, err
	}
	return state, Counts{Subjects: len(subjects), Sessions: len(sessions), Books: len(books)}, nil
}

func decodeSubjects(raw json.RawMessage) ([]subjectRecord, error) {
	subjects := []subjectRecord{}
	if err := json.Unmarshal(raw, &subjects); err != nil {
		return nil, invalid("decode subjects: %v", err)
	}
	for i := range subjects {
		s := &subjects[i]
		if s.ID == "" || strings.TrimSpace(s.Name) == "" {
			return nil, invalid("subject %d needs an id and a name", i)
		}
		if s.Chapters == nil {
			s.Chapters = []chapterRecord{}
		}
		for j := range s.Chapters {
			if s.Chapters[j].ID == "" {
				return nil, invalid("subject %q chapter %d has no id", s.Name, j)
			}
			if s.Chapters[j].Tasks == nil {
				s.Chapters[j].Tasks = []taskRecord{}
			}
			for _, task := range s.Chapters[j].Tasks {
				if task.ID == "" {
					return nil, invalid("subject %q has a task without id", s.Name)
				}
			}
		}
	}
	return subjects, nil
}

func decodeSessions(raw json.RawMessage) ([]sessionRecord, error) {
	sessions := []sessionRecord{}
	if err := json.Unmarshal(raw, &sessions); err != nil {
		return nil, invalid("decode sessions: %v", err)
	}
	for i, s := range sessions {
		switch {
		case s.ID == "":
			return nil, invalid("session %d has no id", i)
		case strings.TrimSpace(s.Subject) == "":
			return nil, invalid("session %s has no subject", s.ID)
		case s.Duration < 1:
			return nil, invalid("session %s lasts %d minutes", s.ID, s.Duration)
		case s.Questions < 0 || s.CorrectQuestions < 0 || s.CorrectQuestions > s.Questions:
			return nil, invalid("session %s has %d of %d questions correct", s.ID, s.CorrectQuestions, s.Questions)
		case s.Date.IsZero():
			return nil, invalid("session %s has no date", s.ID)
		}
	}
	return sessions, nil
}

func decodeBooks(raw json.RawMessage) ([]bookRecord, error) {
	books := []bookRecord{}
	if err := json.Unmarshal(raw, &books); err != nil {
		return nil, invalid("decode library: %v", err)
	}
	for i := range books {
		if books[i].ID == "" {
			return nil, invalid("book %d has no id", i)
		}
		if books[i].Authors == nil {
			books[i].Authors = []string{}
		}
	}
	return books, nil
}

func encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", invalid("encode: %v", err)
	}
	return string(data), nil
}

package dto

type TaskOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type ChapterOutput struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Tasks []TaskOutput `json:"tasks"`
}

type SubjectOutput struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Chapters   []ChapterOutput `json:"chapters"`
	TasksDone  int             `json:"tasksDone"`
	TasksTotal int             `json:"tasksTotal"`
}

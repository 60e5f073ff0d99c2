package ui

import (
	"strconv"

	"github.com/josephgoksu/todolist/models"
)

// descriptionWidth caps the description column in task tables.
const descriptionWidth = 40

// StatusBadge renders a status with a marker and colour.
func StatusBadge(s models.Status) string {
	if s == models.StatusCompleted {
		return StyleDone.Render("✔ " + s.Label())
	}
	return StylePending.Render("○ " + s.Label())
}

// PriorityBadge renders a priority in its colour.
func PriorityBadge(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return StyleHigh.Render(p.Label())
	case models.PriorityMedium:
		return StyleMedium.Render(p.Label())
	default:
		return StyleLow.Render(p.Label())
	}
}

// TaskTable renders tasks in collection order.
func TaskTable(tasks []models.Task) string {
	t := &Table{Headers: []string{"ID", "Title", "Description", "Status", "Priority", "Created"}}
	for _, task := range tasks {
		t.Rows = append(t.Rows, []string{
			strconv.FormatUint(uint64(task.ID), 10),
			task.Title,
			Truncate(task.Description, descriptionWidth),
			StatusBadge(task.Status),
			PriorityBadge(task.Priority),
			task.Created,
		})
	}
	return t.Render()
}

// TaskDetail renders a single task as labelled lines.
func TaskDetail(task models.Task) string {
	return StyleSubtle.Render("ID:          ") + strconv.FormatUint(uint64(task.ID), 10) + "\n" +
		StyleSubtle.Render("Title:       ") + StyleTitle.Render(task.Title) + "\n" +
		StyleSubtle.Render("Description: ") + task.Description + "\n" +
		StyleSubtle.Render("Status:      ") + StatusBadge(task.Status) + "\n" +
		StyleSubtle.Render("Priority:    ") + PriorityBadge(task.Priority) + "\n" +
		StyleSubtle.Render("Created:     ") + task.Created + "\n"
}

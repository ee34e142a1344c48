package tree

import "taskdeck/internal/model"

// Seed returns the fixed initial tree. Reset is simply replacing the current
// tree with a fresh Seed(); edits are discarded and this is not undoable.
//
// Nine nodes, two of them done: six roots, two children under "2", one under
// "5". NextID starts past the seeded ids so minted ids never collide.
func Seed() Tree {
	return Tree{
		NextID: 7,
		Roots: []model.TaskNode{
			{
				ID: "1", Text: "Review the morning inbox",
				Expanded: true, Children: []model.TaskNode{},
			},
			{
				ID: "2", Text: "Plan the week",
				Expanded: true,
				Children: []model.TaskNode{
					{ID: "2-1", Text: "Block focus time", Done: true, Expanded: true, Children: []model.TaskNode{}},
					{ID: "2-2", Text: "Schedule the team check-in", Expanded: true, Children: []model.TaskNode{}},
				},
			},
			{
				ID: "3", Text: "Water the plants",
				Expanded: true, Children: []model.TaskNode{},
			},
			{
				ID: "4", Text: "Read twenty pages",
				Expanded: true, Children: []model.TaskNode{},
			},
			{
				ID: "5", Text: "Ship the side project",
				Expanded: true,
				Children: []model.TaskNode{
					{ID: "5-1", Text: "Write the README", Done: true, Expanded: true, Children: []model.TaskNode{}},
				},
			},
			{
				ID: "6", Text: "Tidy the desk",
				Expanded: true, Children: []model.TaskNode{},
			},
		},
	}
}

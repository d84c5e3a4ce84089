package searcher

import "pirates/game"

// Node is a search tree node. Children are owned by their parent; parent is
// a back pointer used only to walk up during backup.
type Node struct {
	parent   *Node
	player   game.Player     // player to move at this node
	action   game.JointAction // joint action that led here, nil at the root
	children []*Node
	visits   int
	wins     int
}

func newRoot(player game.Player) *Node {
	return &Node{player: player}
}

func (n *Node) Player() game.Player      { return n.player }
func (n *Node) Action() game.JointAction { return n.action }
func (n *Node) Parent() *Node            { return n.parent }
func (n *Node) Children() []*Node        { return n.children }
func (n *Node) Visits() int              { return n.visits }
func (n *Node) Wins() int                { return n.wins }

// mover is the player whose joint action produced this node. Wins are
// counted from its point of view so that a parent ranks its children by its
// own chances.
func (n *Node) mover() game.Player {
	return n.player.Opponent()
}

// expand adds one child per joint action, all at once. A node is expanded at
// most once.
func (n *Node) expand(actions []game.JointAction) {
	if len(n.children) > 0 {
		panic("node is already expanded")
	}
	n.children = n.newChildren(actions)
}

// extend appends children for the joint actions not yet present and returns
// how many were added.
func (n *Node) extend(actions []game.JointAction) int {
	known := make(map[string]bool, len(n.children))
	for _, child := range n.children {
		known[child.action.Key()] = true
	}
	missing := make([]game.JointAction, 0, len(actions))
	for _, ja := range actions {
		if !known[ja.Key()] {
			missing = append(missing, ja)
		}
	}
	n.children = append(n.children, n.newChildren(missing)...)
	return len(missing)
}

func (n *Node) newChildren(actions []game.JointAction) []*Node {
	children := make([]*Node, len(actions))
	for i, ja := range actions {
		children[i] = &Node{
			parent: n,
			player: n.player.Opponent(),
			action: ja,
		}
	}
	return children
}

// update records one playout outcome. A win is a strict score lead for the
// node's mover.
func (n *Node) update(score game.Score) {
	n.visits++
	if score.Beats(n.mover()) {
		n.wins++
	}
}

// backup updates every node from n up to the root.
func backup(n *Node, score game.Score) {
	for node := n; node != nil; node = node.parent {
		node.update(score)
	}
}

// ratio is wins/visits; unvisited nodes get the supplied value.
func (n *Node) ratio(unvisited float64) float64 {
	if n.visits == 0 {
		return unvisited
	}
	return float64(n.wins) / float64(n.visits)
}

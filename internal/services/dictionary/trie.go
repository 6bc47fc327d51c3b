package dictionary

// node is one prefix-tree node. The zero value is an empty root: the
// path from the root to any node spells that node's prefix, and the
// terminal flag marks prefixes that are complete words.
type node struct {
	children map[rune]*node
	terminal bool
}

// insert adds a word, creating missing nodes along the path.
// Inserting the same word twice has no additional effect.
func (n *node) insert(word string) {
	cur := n
	for _, r := range word {
		if cur.children == nil {
			cur.children = make(map[rune]*node)
		}
		next, ok := cur.children[r]
		if !ok {
			next = &node{}
			cur.children[r] = next
		}
		cur = next
	}
	cur.terminal = true
}

// walk follows s one character per edge, returning nil as soon as a
// character has no matching child.
func (n *node) walk(s string) *node {
	cur := n
	for _, r := range s {
		next, ok := cur.children[r]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

func (n *node) hasPrefix(s string) bool {
	return n.walk(s) != nil
}

func (n *node) isWord(s string) bool {
	end := n.walk(s)
	return end != nil && end.terminal
}

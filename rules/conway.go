package rules

// MaxTotal is the largest value a cell total can take: the cell itself plus
// its eight neighbors.
const MaxTotal = 9

/*
conwayTable maps a cell total (own state plus living neighbors) to the next
state of that cell.

A total of 3 is a dead cell with three neighbors (birth) or a live cell with
two (survival); a total of 4 is a live cell with three neighbors.
*/
var conwayTable = [MaxTotal + 1]bool{3: true, 4: true}

// ApplyConwayRules returns the next state of a cell given its total, the sum
// of its own state and the states of its in-bounds neighbors.
func ApplyConwayRules(total int) bool {
	if total < 0 || total > MaxTotal {
		return false
	}
	return conwayTable[total]
}

package mock

import (
	"github.com/poiesic/expandit/core"
	"github.com/poiesic/expandit/lexicon"
)

type fixtureSynset struct {
	name      string
	lemmas    []string
	hypernyms []string
	gloss     string
}

// A fragment of the WordNet noun hierarchy. "limbo" is a second root with
// no path to "entity", so pairs across the two trees score 0.
var fixtureSynsets = []fixtureSynset{
	{"entity.n.01", []string{"entity"}, nil, "that which is perceived or known or inferred to have its own distinct existence"},
	{"physical_entity.n.01", []string{"physical_entity"}, []string{"entity.n.01"}, "an entity that has physical existence"},
	{"abstraction.n.06", []string{"abstraction", "abstract_entity"}, []string{"entity.n.01"}, "a general concept formed by extracting common features from specific examples"},
	{"object.n.01", []string{"object", "physical_object"}, []string{"physical_entity.n.01"}, "a tangible and visible entity"},
	{"matter.n.03", []string{"matter"}, []string{"physical_entity.n.01"}, "that which has mass and occupies space"},
	{"whole.n.02", []string{"whole", "unit"}, []string{"object.n.01"}, "an assemblage of parts that is regarded as a single entity"},
	{"living_thing.n.01", []string{"living_thing", "animate_thing"}, []string{"whole.n.02"}, "a living (or once living) entity"},
	{"organism.n.01", []string{"organism", "being"}, []string{"living_thing.n.01"}, "a living thing that has (or can develop) the ability to act or function independently"},
	{"plant.n.02", []string{"plant", "flora", "plant_life"}, []string{"organism.n.01"}, "a living organism lacking the power of locomotion"},
	{"tree.n.01", []string{"tree"}, []string{"plant.n.02"}, "a tall perennial woody plant having a main trunk and branches"},
	{"apple.n.02", []string{"apple", "orchard_apple_tree", "Malus_pumila"}, []string{"tree.n.01"}, "native Eurasian tree widely cultivated in many varieties for its firm rounded edible fruits"},
	{"food.n.02", []string{"food", "solid_food"}, []string{"matter.n.03"}, "any solid substance that is used as a source of nourishment"},
	{"produce.n.01", []string{"produce", "green_goods", "green_groceries", "garden_truck"}, []string{"food.n.02"}, "fresh fruits and vegetable grown for the market"},
	{"edible_fruit.n.01", []string{"edible_fruit"}, []string{"produce.n.01"}, "edible reproductive body of a seed plant"},
	{"apple.n.01", []string{"apple", "eating_apple"}, []string{"edible_fruit.n.01"}, "fruit with red or yellow or green skin and sweet to tart crisp whitish flesh"},
	{"baked_goods.n.01", []string{"baked_goods"}, []string{"food.n.02"}, "foods that are baked"},
	{"pie.n.01", []string{"pie"}, []string{"baked_goods.n.01"}, "dish baked in pastry-lined pan often with a pastry top"},
	{"chemical.n.01", []string{"chemical", "chemical_substance"}, []string{"matter.n.03"}, "material produced by or used in a reaction involving changes in atoms or molecules"},
	{"acid.n.01", []string{"acid"}, []string{"chemical.n.01"}, "any of various water-soluble compounds having a sour taste"},
	{"nucleic_acid.n.01", []string{"nucleic_acid"}, []string{"acid.n.01"}, "a complex biochemical macromolecule composed of nucleotide chains"},
	{"dna.n.01", []string{"deoxyribonucleic_acid", "desoxyribonucleic_acid", "DNA"}, []string{"nucleic_acid.n.01"}, "a long linear polymer found in the nucleus of a cell"},
	{"property.n.02", []string{"property"}, []string{"abstraction.n.06"}, "a basic or essential attribute shared by all members of a class"},
	{"physical_property.n.01", []string{"physical_property"}, []string{"property.n.02"}, "any property used to characterize matter and energy"},
	{"energy.n.01", []string{"energy", "free_energy"}, []string{"physical_property.n.01"}, "a thermodynamic quantity equivalent to the capacity of a physical system to do work"},
	{"energy.n.02", []string{"energy", "vigor", "vigour", "zip"}, []string{"property.n.02"}, "forceful exertion"},
	{"limbo.n.01", []string{"limbo"}, nil, "an imaginary place for lost or neglected things"},
	{"ghost_word.n.01", []string{"ghost_word"}, []string{"limbo.n.01"}, "a word that has entered the lexicon through a copying error"},
}

// fixtureIndex lists senses most frequent first.
var fixtureIndex = map[string][]string{
	"entity":       {"entity.n.01"},
	"object":       {"object.n.01"},
	"matter":       {"matter.n.03"},
	"organism":     {"organism.n.01"},
	"plant":        {"plant.n.02"},
	"tree":         {"tree.n.01"},
	"apple":        {"apple.n.01", "apple.n.02"},
	"food":         {"food.n.02"},
	"produce":      {"produce.n.01"},
	"pie":          {"pie.n.01"},
	"chemical":     {"chemical.n.01"},
	"acid":         {"acid.n.01"},
	"dna":          {"dna.n.01"},
	"nucleic_acid": {"nucleic_acid.n.01"},
	"energy":       {"energy.n.01", "energy.n.02"},
	"vigor":        {"energy.n.02"},
	"zip":          {"energy.n.02"},
	"property":     {"property.n.02"},
	"limbo":        {"limbo.n.01"},
	"ghost_word":   {"ghost_word.n.01"},
}

// FixtureSynsets returns the fixture synsets with IDs derived from their names.
func FixtureSynsets() []*core.Synset {
	synsets := make([]*core.Synset, 0, len(fixtureSynsets))
	for _, f := range fixtureSynsets {
		s := &core.Synset{
			Id:     FixtureID(f.name),
			Name:   f.name,
			Pos:    core.Noun,
			Lemmas: append([]string(nil), f.lemmas...),
			Gloss:  f.gloss,
		}
		for _, h := range f.hypernyms {
			s.Hypernyms = append(s.Hypernyms, FixtureID(h))
		}
		synsets = append(synsets, s)
	}
	return synsets
}

// FixtureWordSenses returns the fixture word index.
func FixtureWordSenses() []*core.WordSenses {
	entries := make([]*core.WordSenses, 0, len(fixtureIndex))
	for word, names := range fixtureIndex {
		entry := &core.WordSenses{Word: word, Pos: core.Noun}
		for _, name := range names {
			entry.Senses = append(entry.Senses, FixtureID(name))
		}
		entries = append(entries, entry)
	}
	return entries
}

// FixtureID returns the ID of the fixture synset with the given name.
func FixtureID(name string) core.ID {
	return core.IDFromContent(name)
}

// NewFixtureTaxonomy builds a Taxonomy from the fixture data.
func NewFixtureTaxonomy(opts ...lexicon.TaxonomyOption) *lexicon.Taxonomy {
	return lexicon.NewTaxonomy(FixtureSynsets(), FixtureWordSenses(), opts...)
}

package checkpoint

import (
	"github.com/evoengine/evo/evoerr"
	"github.com/evoengine/evo/front"
	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
	"github.com/evoengine/evo/phenotype"
	"github.com/evoengine/evo/species"
)

// chromosomeKind distinguishes the four Chromosome implementations; it
// exists because TreeChromosome and GraphChromosome both report
// Variant() == genome.Node and so can't be told apart by Variant alone.
type chromosomeKind int

const (
	kindLinear chromosomeKind = iota
	kindPermutation
	kindTree
	kindGraph
)

// geneDTO is a flat, fully-exported mirror of exactly one Gene variant.
// Bit/Float/Int/Char genes are self-contained and round-trip without any
// outside help. Permutation and Node genes reference shared shape
// metadata (AlleleTable, NodeStore) that never round-trips through a
// geneDTO — it comes from the prototype genotype supplied to fromDTO
// instead, since it is the same pointer for every gene/chromosome of that
// shape across an entire run.
type geneDTO struct {
	Variant genome.Variant

	Bit bool

	FloatAllele     float64
	FloatValueRange [2]float64
	FloatBoundRange [2]float64

	IntAllele     int64
	IntValueRange [2]int64
	IntBoundRange [2]int64

	CharAllele rune
	CharSet    []rune
}

func geneToDTO(g genome.Gene) geneDTO {
	switch v := g.(type) {
	case *genome.BitGene:
		return geneDTO{Variant: genome.Bit, Bit: v.Allele}
	case *genome.FloatGene:
		return geneDTO{Variant: genome.Float, FloatAllele: v.Allele, FloatValueRange: v.ValueRange, FloatBoundRange: v.BoundRange}
	case *genome.IntGene:
		return geneDTO{Variant: genome.Int, IntAllele: v.Allele, IntValueRange: v.ValueRange, IntBoundRange: v.BoundRange}
	case *genome.CharGene:
		set := append([]rune{}, v.CharSet...)
		return geneDTO{Variant: genome.Char, CharAllele: v.Allele, CharSet: set}
	default:
		panic(evoerr.Checkpoint("unsupported linear gene type %T", g))
	}
}

func geneFromDTO(d geneDTO) genome.Gene {
	switch d.Variant {
	case genome.Bit:
		return &genome.BitGene{Allele: d.Bit}
	case genome.Float:
		return &genome.FloatGene{Allele: d.FloatAllele, ValueRange: d.FloatValueRange, BoundRange: d.FloatBoundRange}
	case genome.Int:
		return &genome.IntGene{Allele: d.IntAllele, ValueRange: d.IntValueRange, BoundRange: d.IntBoundRange}
	default:
		return &genome.CharGene{Allele: d.CharAllele, CharSet: d.CharSet}
	}
}

type treeNodeDTO struct {
	OpIndex  int
	Parent   int
	Children []int
}

type graphNodeDTO struct {
	OpIndex  int
	Kind     genome.NodeKind
	Incoming []int
	Outgoing []int
}

// chromosomeDTO mirrors exactly one of the four Chromosome
// implementations, tagged by Kind; only the fields its Kind uses are
// populated.
type chromosomeDTO struct {
	Kind chromosomeKind

	Variant     genome.Variant
	LinearGenes []geneDTO

	PermIndices []int

	TreeNodes []treeNodeDTO
	TreeRoot  int

	GraphNodes          []graphNodeDTO
	GraphAllowRecurrent bool
}

func chromosomeToDTO(c genome.Chromosome) chromosomeDTO {
	switch v := c.(type) {
	case *genome.LinearChromosome:
		genes := make([]geneDTO, v.Len())
		for i := 0; i < v.Len(); i++ {
			genes[i] = geneToDTO(v.Gene(i))
		}
		return chromosomeDTO{Kind: kindLinear, Variant: v.Variant(), LinearGenes: genes}

	case *genome.PermutationChromosome:
		idx := make([]int, v.Len())
		for i := 0; i < v.Len(); i++ {
			idx[i] = v.Gene(i).(*genome.PermutationGene).Index
		}
		return chromosomeDTO{Kind: kindPermutation, PermIndices: idx}

	case *genome.TreeChromosome:
		nodes := make([]treeNodeDTO, v.Len())
		for i := 0; i < v.Len(); i++ {
			n := v.Node(i)
			nodes[i] = treeNodeDTO{OpIndex: n.Gene.OpIndex, Parent: n.Parent, Children: append([]int{}, n.Children...)}
		}
		return chromosomeDTO{Kind: kindTree, TreeNodes: nodes, TreeRoot: v.Root()}

	case *genome.GraphChromosome:
		nodes := make([]graphNodeDTO, v.Len())
		for i := 0; i < v.Len(); i++ {
			n := v.Node(i)
			nodes[i] = graphNodeDTO{
				OpIndex:  n.Gene.OpIndex,
				Kind:     n.Kind,
				Incoming: append([]int{}, n.Incoming...),
				Outgoing: append([]int{}, n.Outgoing...),
			}
		}
		return chromosomeDTO{Kind: kindGraph, GraphNodes: nodes, GraphAllowRecurrent: v.AllowRecurrent()}

	default:
		panic(evoerr.Checkpoint("unsupported chromosome type %T", c))
	}
}

// chromosomeFromDTO rebuilds a chromosome, relinking it to proto's shared
// shape metadata (AlleleTable/NodeStore) instead of serializing that
// metadata itself.
func chromosomeFromDTO(d chromosomeDTO, proto genome.Chromosome) (genome.Chromosome, error) {
	switch d.Kind {
	case kindLinear:
		if _, ok := proto.(*genome.LinearChromosome); !ok {
			return nil, evoerr.Checkpoint("prototype chromosome is %T, blob wants Linear(%s)", proto, d.Variant)
		}
		genes := make([]genome.Gene, len(d.LinearGenes))
		for i, gd := range d.LinearGenes {
			genes[i] = geneFromDTO(gd)
		}
		return genome.NewLinearChromosome(d.Variant, genes), nil

	case kindPermutation:
		pc, ok := proto.(*genome.PermutationChromosome)
		if !ok {
			return nil, evoerr.Checkpoint("prototype chromosome is %T, blob wants Permutation", proto)
		}
		table := pc.Table()
		genes := make([]*genome.PermutationGene, len(d.PermIndices))
		for i, idx := range d.PermIndices {
			genes[i] = &genome.PermutationGene{Index: idx, Table: table}
		}
		return genome.NewPermutationChromosome(genes, table), nil

	case kindTree:
		tc, ok := proto.(*genome.TreeChromosome)
		if !ok {
			return nil, evoerr.Checkpoint("prototype chromosome is %T, blob wants Tree", proto)
		}
		store := tc.Store()
		nodes := make([]genome.TreeNode, len(d.TreeNodes))
		for i, n := range d.TreeNodes {
			nodes[i] = genome.TreeNode{
				Gene:     &genome.NodeGene{OpIndex: n.OpIndex, Store: store},
				Parent:   n.Parent,
				Children: n.Children,
			}
		}
		return genome.NewTreeChromosome(store, nodes, d.TreeRoot), nil

	case kindGraph:
		gc, ok := proto.(*genome.GraphChromosome)
		if !ok {
			return nil, evoerr.Checkpoint("prototype chromosome is %T, blob wants Graph", proto)
		}
		store := gc.Store()
		nodes := make([]genome.GraphNode, len(d.GraphNodes))
		for i, n := range d.GraphNodes {
			nodes[i] = genome.GraphNode{
				Gene:     &genome.NodeGene{OpIndex: n.OpIndex, Store: store},
				Kind:     n.Kind,
				Incoming: n.Incoming,
				Outgoing: n.Outgoing,
			}
		}
		return genome.NewGraphChromosome(store, nodes, d.GraphAllowRecurrent), nil

	default:
		return nil, evoerr.Checkpoint("unknown chromosome kind %d", d.Kind)
	}
}

type genotypeDTO struct {
	Chromosomes []chromosomeDTO
}

func genotypeToDTO(g *genome.Genotype) genotypeDTO {
	cs := make([]chromosomeDTO, len(g.Chromosomes))
	for i, c := range g.Chromosomes {
		cs[i] = chromosomeToDTO(c)
	}
	return genotypeDTO{Chromosomes: cs}
}

func genotypeFromDTO(d genotypeDTO, proto *genome.Genotype) (*genome.Genotype, error) {
	if len(d.Chromosomes) != len(proto.Chromosomes) {
		return nil, evoerr.Checkpoint("genotype has %d chromosomes, prototype has %d", len(d.Chromosomes), len(proto.Chromosomes))
	}
	cs := make([]genome.Chromosome, len(d.Chromosomes))
	for i, cd := range d.Chromosomes {
		c, err := chromosomeFromDTO(cd, proto.Chromosomes[i])
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	return genome.NewGenotype(cs...), nil
}

type phenotypeDTO struct {
	ID       int64
	Genotype genotypeDTO
	Score    objective.Score
	BirthGen int
}

func phenotypeToDTO(p *phenotype.Phenotype) phenotypeDTO {
	return phenotypeDTO{ID: p.ID, Genotype: genotypeToDTO(p.Genotype), Score: p.Score, BirthGen: p.BirthGen}
}

func phenotypeFromDTO(d phenotypeDTO, proto *genome.Genotype) (*phenotype.Phenotype, error) {
	g, err := genotypeFromDTO(d.Genotype, proto)
	if err != nil {
		return nil, err
	}
	return phenotype.Restore(d.ID, g, d.Score, d.BirthGen), nil
}

type speciesDTO struct {
	ID                   int
	Mascot               phenotypeDTO
	Members              []int
	BestScoreEver        objective.Score
	Age                  int
	GenerationsNoImprove int
}

type ecosystemDTO struct {
	Population    []phenotypeDTO
	SpeciesNextID int
	Species       []speciesDTO
	FrontObjective objective.Objective
	FrontMinSize  int
	FrontMaxSize  int
	FrontMembers  []phenotypeDTO
}

func ecosystemToDTO(eco ecosystem) ecosystemDTO {
	members := make([]phenotypeDTO, eco.Population.Len())
	for i, m := range eco.Population.Members {
		members[i] = phenotypeToDTO(m)
	}

	sp := make([]speciesDTO, len(eco.Species.All()))
	for i, s := range eco.Species.All() {
		sp[i] = speciesDTO{
			ID:                   s.ID,
			Mascot:               phenotypeToDTO(s.Mascot),
			Members:              append([]int{}, s.Members...),
			BestScoreEver:        s.BestScoreEver,
			Age:                  s.Age,
			GenerationsNoImprove: s.GenerationsNoImprove,
		}
	}

	frontMembers := make([]phenotypeDTO, len(eco.Front.Members()))
	for i, m := range eco.Front.Members() {
		frontMembers[i] = phenotypeToDTO(m)
	}

	return ecosystemDTO{
		Population:     members,
		SpeciesNextID:  eco.Species.NextID(),
		Species:        sp,
		FrontObjective: eco.Front.Objective(),
		FrontMinSize:   eco.Front.MinSize,
		FrontMaxSize:   eco.Front.MaxSize,
		FrontMembers:   frontMembers,
	}
}

func ecosystemFromDTO(d ecosystemDTO, proto *genome.Genotype) (ecosystem, error) {
	members := make([]*phenotype.Phenotype, len(d.Population))
	var maxID int64
	for i, pd := range d.Population {
		p, err := phenotypeFromDTO(pd, proto)
		if err != nil {
			return ecosystem{}, err
		}
		members[i] = p
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	speciesList := make([]*species.Species, len(d.Species))
	for i, sd := range d.Species {
		mascot, err := phenotypeFromDTO(sd.Mascot, proto)
		if err != nil {
			return ecosystem{}, err
		}
		if mascot.ID > maxID {
			maxID = mascot.ID
		}
		speciesList[i] = &species.Species{
			ID:                   sd.ID,
			Mascot:               mascot,
			Members:              sd.Members,
			BestScoreEver:        sd.BestScoreEver,
			Age:                  sd.Age,
			GenerationsNoImprove: sd.GenerationsNoImprove,
		}
	}

	frontMembers := make([]*phenotype.Phenotype, len(d.FrontMembers))
	for i, fd := range d.FrontMembers {
		p, err := phenotypeFromDTO(fd, proto)
		if err != nil {
			return ecosystem{}, err
		}
		frontMembers[i] = p
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	phenotype.BumpNextID(maxID + 1)

	return ecosystem{
		Population: phenotype.NewPopulation(members),
		Species:    species.Restore(d.SpeciesNextID, speciesList),
		Front:      front.Restore(d.FrontObjective, d.FrontMinSize, d.FrontMaxSize, frontMembers),
	}, nil
}

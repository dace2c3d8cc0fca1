/*
Package id3 grows unpruned decision trees from labeled datasets of discrete
values using the ID3 induction procedure.

At every node the attribute whose split brings the greatest information
gain is chosen, the dataset is partitioned by its values and the procedure
recurses on every part with the attribute column removed. Nodes whose
records share a label, or that have no productive attribute left, become
leaves.
*/
package id3
